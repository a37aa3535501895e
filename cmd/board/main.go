// Package main provides the board binary: a terminal client for the
// communication board API. It lists categories and cards, composes messages
// card by card, and speaks them through the platform synthesizer.
package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/mneis/alternative-communicator/internal/client"
	"github.com/mneis/alternative-communicator/internal/config"
	"github.com/mneis/alternative-communicator/internal/locale"
	"github.com/mneis/alternative-communicator/internal/model"
	"github.com/mneis/alternative-communicator/internal/speech"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// boardOpts are the resolved root flags shared by all subcommands.
type boardOpts struct {
	apiURL string
	lang   string
	rate   float64
	pitch  float64
}

func (o *boardOpts) locale() (locale.Locale, error) {
	return locale.Parse(o.lang)
}

func (o *boardOpts) client() *client.Client {
	return client.New(o.apiURL)
}

func (o *boardOpts) synthesizer(loc locale.Locale) *speech.Synthesizer {
	return speech.New(speech.DefaultEngine(),
		speech.WithLocale(loc),
		speech.WithRate(o.rate),
		speech.WithPitch(o.pitch),
	)
}

func rootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := &boardOpts{rate: cfg.SpeechRate, pitch: cfg.SpeechPitch}

	cmd := &cobra.Command{
		Use:          "board",
		Short:        "Bilingual communication board client",
		Long:         "board is a terminal client for the communication board API:\nbrowse categories and cards, compose a message card by card, and\nspeak it in English or Brazilian Portuguese.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", cfg.APIBaseURL, "catalog API base URL")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", cfg.Language, "board language (en-US or pt-BR)")

	cmd.AddCommand(categoriesCmd(opts), cardsCmd(opts), sayCmd(opts), composeCmd(opts))
	return cmd
}

func categoriesCmd(opts *boardOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List board categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := opts.client().Categories(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tICON\tNAME\tNAME (PT)")
			for _, c := range cats {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Icon, c.Name, c.NamePortuguese)
			}
			return w.Flush()
		},
	}
}

func cardsCmd(opts *boardOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "cards <category-id>",
		Short: "List one category's cards in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			cards, err := opts.client().CardsByCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			printCards(cmd, cards)
			return nil
		},
	}
}

func printCards(cmd *cobra.Command, cards []model.Card) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tLABEL (PT)")
	for _, c := range cards {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Label, c.LabelPortuguese)
	}
	w.Flush()
}
