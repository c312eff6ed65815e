package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/pliden/go-immargs/immargs"
)

// Benchmark simple CLI with basic flags
// Tests parsing performance with int and bool flags

func BenchmarkSimpleCLI_Immargs(b *testing.B) {
	spec := immargs.New("bench")
	spec.Option("--port").Value("port", immargs.DecodeInt)
	spec.Option("--verbose")
	if err := spec.Validate(); err != nil {
		b.Fatal(err)
	}

	argv := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = immargs.Parse(spec, argv)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark with subcommands
// Tests command routing and flag parsing in subcommands

func BenchmarkSubcommands_Immargs(b *testing.B) {
	outer := immargs.New("bench")
	outer.Option("--global")
	outer.Arg("command").Command("serve")
	if err := outer.Validate(); err != nil {
		b.Fatal(err)
	}

	serve := immargs.New("bench serve")
	serve.Option("--port").Value("port", immargs.DecodeInt)
	serve.Option("--host").Value("host", immargs.DecodeString)
	if err := serve.Validate(); err != nil {
		b.Fatal(err)
	}

	argv := []string{"bench", "--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result, err := immargs.Parse(outer, argv)
		if err != nil {
			b.Fatal(err)
		}
		_, _ = immargs.Parse(serve, result.Rest())
	}
}

func BenchmarkSubcommands_Cobra(b *testing.B) {
	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		rootCmd.PersistentFlags().Bool("global", false, "Global flag")

		serveCmd := &cobra.Command{
			Use: "serve",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		serveCmd.Flags().IntP("port", "p", 8080, "Server port")
		serveCmd.Flags().String("host", "localhost", "Server host")
		rootCmd.AddCommand(serveCmd)

		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSubcommands_Urfave(b *testing.B) {
	args := []string{"bench", "--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "global", Usage: "Global flag"},
			},
			Commands: []*cli.Command{
				{
					Name: "serve",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
						&cli.StringFlag{Name: "host", Value: "localhost", Usage: "Server host"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark many flags
// Tests performance with many flags (realistic CLI tool scenario)

func BenchmarkManyFlags_Immargs(b *testing.B) {
	spec := immargs.New("bench")
	spec.Option("--flag1").Value("value", immargs.DecodeString)
	spec.Option("--flag2").Value("value", immargs.DecodeString)
	spec.Option("--flag3").Value("value", immargs.DecodeString)
	spec.Option("--flag4").Value("value", immargs.DecodeString)
	spec.Option("--flag5").Value("value", immargs.DecodeString)
	spec.Option("--port").Value("port", immargs.DecodeInt)
	spec.Option("--verbose")
	spec.Option("--debug")
	spec.Option("--quiet")
	spec.Option("--force")
	if err := spec.Validate(); err != nil {
		b.Fatal(err)
	}

	argv := []string{
		"bench",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = immargs.Parse(spec, argv)
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().String("flag1", "value1", "Flag 1")
		cmd.Flags().String("flag2", "value2", "Flag 2")
		cmd.Flags().String("flag3", "value3", "Flag 3")
		cmd.Flags().String("flag4", "value4", "Flag 4")
		cmd.Flags().String("flag5", "value5", "Flag 5")
		cmd.Flags().Int("port", 8080, "Port")
		cmd.Flags().Bool("verbose", false, "Verbose")
		cmd.Flags().Bool("debug", false, "Debug")
		cmd.Flags().Bool("quiet", false, "Quiet")
		cmd.Flags().Bool("force", false, "Force")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	args := []string{
		"bench",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "flag1", Value: "value1", Usage: "Flag 1"},
				&cli.StringFlag{Name: "flag2", Value: "value2", Usage: "Flag 2"},
				&cli.StringFlag{Name: "flag3", Value: "value3", Usage: "Flag 3"},
				&cli.StringFlag{Name: "flag4", Value: "value4", Usage: "Flag 4"},
				&cli.StringFlag{Name: "flag5", Value: "value5", Usage: "Flag 5"},
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose"},
				&cli.BoolFlag{Name: "debug", Usage: "Debug"},
				&cli.BoolFlag{Name: "quiet", Usage: "Quiet"},
				&cli.BoolFlag{Name: "force", Usage: "Force"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
