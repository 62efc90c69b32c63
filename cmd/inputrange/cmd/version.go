package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the inputrange version and build time.",
		Usage: "inputrange version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}
