package experiments

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveFile string
	runs     int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 1000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 600, "Horizon of each episode in years")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(BasinsCommand())
	rootCommand.AddCommand(CriticalCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}
