package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/journal_posting/internal/core/services"
	"github.com/SscSPs/journal_posting/internal/loader"
)

func init() {
	rootCmd.AddCommand(postCmd)

	postCmd.Flags().StringP("file", "f", loader.DefaultPath, "Journal entry document to post")
	postCmd.Flags().String("actor", "", "User recorded as creator (defaults to DEFAULT_ACTOR)")
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a journal entry read from a JSON document",
	Long: `Read a journal entry document, validate that its debits and credits balance,
and write the entry with its account lines and ledger postings in one transaction.`,
	Args: cobra.NoArgs,
	RunE: runPost,
}

func runPost(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	actor, _ := cmd.Flags().GetString("actor")
	if actor = strings.TrimSpace(actor); actor == "" {
		actor = cfg.DefaultActor
	}

	req, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	entry, lines, err := req.ToDomain()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := services.NewServiceContainer(cfg, repos)
	posted, err := svc.Journal.PostJournalEntry(ctx, entry, lines, actor, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Posted journal entry %s (%d lines, %d ledger entries)\n",
		posted.Name, posted.LineCount(), posted.LedgerEntryCount())
	return nil
}
