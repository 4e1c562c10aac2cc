package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jobtrack/internal/app"
)

var stdin = bufio.NewReader(os.Stdin)

// readPassphrase prompts on stderr and reads without echo when stdin is a
// terminal, or reads a single line otherwise.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return string(b), nil
	}

	line, err := stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a timestamped copy of all applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "Export", func(a *app.JobTrackApp) error {
			res, err := a.Export(cmd.Context())
			if err != nil {
				return err
			}

			kind := "plaintext"
			if res.Encrypted {
				kind = "encrypted"
			}
			fmt.Printf("Exported %d application(s) (%s) to %s\n", res.Count, kind, res.Location)
			if !res.Report.NoData {
				fmt.Printf("Interview rate %.1f%%, offer rate %.1f%%, %d active\n",
					res.Report.Metrics.InterviewRate, res.Report.Metrics.OfferRate, res.Report.Active)
			}
			return nil
		})
	},
}

var exportKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Create the key pair for encrypted exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		pass, err := readPassphrase("Passphrase for the private key: ")
		if err != nil {
			return err
		}
		confirm, err := readPassphrase("Repeat passphrase: ")
		if err != nil {
			return err
		}
		if pass != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		return withApp(cmd, "SetupKeys", func(a *app.JobTrackApp) error {
			pub, err := a.SetupKeys(pass)
			if err != nil {
				return err
			}
			fmt.Println("Export keys created.")
			if pub != "" {
				fmt.Printf("Public key: %s\n", pub)
			}
			fmt.Println("Set encrypt = true under [export] to encrypt future exports.")
			return nil
		})
	},
}

var exportDecryptCmd = &cobra.Command{
	Use:   "decrypt FILE",
	Short: "Decrypt an encrypted export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("output")

		pass, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}

		return withApp(cmd, "DecryptExport", func(a *app.JobTrackApp) error {
			if outPath == "" {
				return a.Decrypt(args[0], pass, os.Stdout)
			}

			f, err := os.OpenFile(outPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := a.Decrypt(args[0], pass, f); err != nil {
				f.Close()
				os.Remove(outPath)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing output file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Decrypted to %s\n", outPath)
			return nil
		})
	},
}

func init() {
	exportCmd.AddCommand(exportKeysCmd)
	exportCmd.AddCommand(exportDecryptCmd)
	exportDecryptCmd.Flags().StringP("output", "o", "", "Write plaintext to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
