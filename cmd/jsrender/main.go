// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command jsrender prints the source text for a JSON-encoded syntax tree.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mdhender/jsrender"
	"github.com/mdhender/jsrender/loader"
	"github.com/mdhender/jsrender/renderer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := cmdRoot(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

// cmdRoot returns the root command. Input files are read from fs.
func cmdRoot(fs afero.Fs) *cobra.Command {
	maxDepth := renderer.DefaultMaxDepth
	relativeToCWD := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		cmd.Flags().IntVar(&maxDepth, "max-depth", maxDepth, "maximum nesting depth of the tree")
		cmd.Flags().BoolVar(&relativeToCWD, "relative-to-cwd", relativeToCWD, "resolve the input against the working directory instead of the executable's directory")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "jsrender <syntax-tree.json>",
		Short:        "Render a JSON syntax tree as source code",
		Long:         `Read a JSON-encoded syntax tree and print the source code it describes.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to syntax tree file
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				log.Printf("jsrender: version %q\n", jsrender.Version().Core())
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			if quiet {
				verbose, debug = false, false
			}

			started := time.Now()

			var ldr *loader.Loader
			if relativeToCWD {
				ldr = loader.New("")
			} else {
				var err error
				ldr, err = loader.NewFromExecutable()
				if err != nil {
					return fmt.Errorf("executable: %w", err)
				}
			}
			ldr.SetFS(fs)
			ldr.SetDebug(debug)

			input, err := ldr.Load(args[0])
			if err != nil {
				return err
			}
			if verbose {
				log.Printf("%s: loaded %s in %v\n", input.Path, humanize.Bytes(uint64(input.Size)), time.Since(started))
			}

			r, err := renderer.New(
				renderer.WithMaxDepth(maxDepth),
				renderer.WithDebug(debug),
				renderer.WithVerbose(verbose),
			)
			if err != nil {
				return err
			}
			text, err := r.Render(input.Root)
			if err != nil {
				if debug {
					log.Printf("%s: %s\n", input.Path, jsrender.ErrorCode(err))
				}
				return err
			}

			// the rendered text is written only after the whole tree succeeds
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
				return err
			}
			if verbose {
				log.Printf("%s: finished in %v\n", input.Path, time.Since(started))
			}

			return nil
		},
	}
	cmd.AddCommand(cmdVersion())
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(cmd.OutOrStdout(), jsrender.Version().String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), jsrender.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
