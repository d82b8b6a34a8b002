package main

var (
	rootFlags struct {
		env  string
		seed int64
	}

	rootCommand = NewCommand("admin", nil)
)

func init() {
	rootCommand.Command.SilenceUsage = true
	rootCommand.StringVar(&rootFlags.env, "env", "local", false)
	rootCommand.Int64Var(&rootFlags.seed, "seed", 0, false)
}
