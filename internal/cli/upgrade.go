package cli

import (
	"fmt"
	"strings"

	goytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/spf13/cobra"

	"github.com/vidl-dev/vidl/internal/core/errs"
	"github.com/vidl-dev/vidl/internal/sys"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Update the yt-dlp backend to its latest version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sys.RequireBackend(); err != nil {
			return err
		}

		fmt.Println("Updating yt-dlp...")
		res, err := goytdlp.New().Update(cmd.Context())
		if err != nil {
			return errs.Wrap(errs.KindEnvironment, err, "backend update failed").
				WithHint("If yt-dlp was installed via pip, run: python3 -m pip install -U yt-dlp")
		}

		if out := strings.TrimSpace(res.Stdout); out != "" {
			fmt.Println(out)
		}
		fmt.Printf("%s Backend is up to date.\n", doneStyle.Render("✓"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
