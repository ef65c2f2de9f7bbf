package experiments

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// ServeCommand exposes a finished results folder over HTTP: a listing
// of run artifacts and the files themselves (plots, traces, summaries).
func ServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use: "serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := gin.Default()
			router.GET("/runs", func(c *gin.Context) {
				entries, err := os.ReadDir(saveFile)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				names := make([]string, 0, len(entries))
				for _, entry := range entries {
					names = append(names, entry.Name())
				}
				c.JSON(http.StatusOK, names)
			})
			router.StaticFS("/files", http.Dir(saveFile))
			return router.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address of the results server")
	return cmd
}
