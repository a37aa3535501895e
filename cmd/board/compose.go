package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mneis/alternative-communicator/internal/composer"
	"github.com/mneis/alternative-communicator/internal/locale"
	"github.com/mneis/alternative-communicator/internal/model"
	"github.com/mneis/alternative-communicator/internal/speech"

	"github.com/spf13/cobra"
)

// notice holds the bilingual one-shot messages shown to the user.
type notice struct{ en, pt string }

var (
	noticeNoSpeech   = notice{"Speech synthesis not supported", "Síntese de voz não suportada"}
	noticeNoCards    = notice{"No cards selected", "Nenhum cartão selecionado"}
	noticeLangEN     = notice{"English selected", "English selected"}
	noticeLangPT     = notice{"Português selecionado", "Português selecionado"}
	noticeCleared    = notice{"Message cleared", "Mensagem apagada"}
)

func (n notice) in(l locale.Locale) string {
	if l == locale.Portuguese {
		return n.pt
	}
	return n.en
}

func sayCmd(opts *boardOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text>...",
		Short: "Speak the given text in the active language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.locale()
			if err != nil {
				return err
			}
			synth := opts.synthesizer(loc)
			if !synth.Supported() {
				return fmt.Errorf("%s", noticeNoSpeech.in(loc))
			}
			if err := synth.Speak(strings.Join(args, " ")); err != nil {
				return err
			}
			waitForSpeech(synth)
			return nil
		},
	}
}

func composeCmd(opts *boardOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Compose a message interactively and speak it",
		Long: `Compose starts an interactive session. Tap cards by number to build a
message, then:

  speak        speak the composed message
  clear        empty the message
  lang <code>  switch language (en-US or pt-BR)
  cat <id>     switch category
  cats         list categories
  quit         leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := opts.locale()
			if err != nil {
				return err
			}
			return runCompose(cmd, opts, loc)
		},
	}
}

func runCompose(cmd *cobra.Command, opts *boardOpts, loc locale.Locale) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	board := composer.New(opts.client())
	board.SetLocale(loc)
	synth := opts.synthesizer(loc)
	if !synth.Supported() {
		fmt.Fprintln(out, noticeNoSpeech.in(loc))
	}

	cats, err := board.LoadCategories(ctx)
	if err != nil {
		return err
	}
	printCategories(cmd, cats, loc)

	// LoadCategories auto-selected the first category; show its cards.
	cards, err := board.SelectCategory(ctx, board.SelectedCategory())
	if err != nil {
		return err
	}
	printCards(cmd, cards)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		switch {
		case line == "":
			// ignore

		case line == "quit" || line == "exit":
			synth.Cancel()
			return nil

		case line == "speak":
			if len(board.Selected()) == 0 {
				fmt.Fprintln(out, noticeNoCards.in(board.Locale()))
			} else if !synth.Supported() {
				fmt.Fprintln(out, noticeNoSpeech.in(board.Locale()))
			} else if err := synth.Speak(board.ComposedText()); err != nil {
				fmt.Fprintln(out, err)
			}

		case line == "clear":
			board.Clear()
			fmt.Fprintln(out, noticeCleared.in(board.Locale()))

		case line == "cats":
			printCategories(cmd, cats, board.Locale())

		case fields[0] == "lang" && len(fields) == 2:
			l, err := locale.Parse(fields[1])
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			board.SetLocale(l)
			synth.SetLocale(l)
			if l == locale.Portuguese {
				fmt.Fprintln(out, noticeLangPT.in(l))
			} else {
				fmt.Fprintln(out, noticeLangEN.in(l))
			}

		case fields[0] == "cat" && len(fields) == 2:
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(out, "invalid category id %q\n", fields[1])
				break
			}
			if cards, err = board.SelectCategory(ctx, id); err != nil {
				fmt.Fprintln(out, err)
				break
			}
			printCards(cmd, cards)

		default:
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(out, "unknown command %q\n", line)
				break
			}
			card, ok := findCard(cards, n)
			if !ok {
				fmt.Fprintf(out, "no card with id %d in this category\n", n)
				break
			}
			board.AppendCard(card)
			fmt.Fprintln(out, board.ComposedText())
		}

		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func printCategories(cmd *cobra.Command, cats []model.Category, loc locale.Locale) {
	out := cmd.OutOrStdout()
	for _, c := range cats {
		fmt.Fprintf(out, "  [%d] %s\n", c.ID, locale.LabelFor(c.Name, c.NamePortuguese, loc))
	}
}

func findCard(cards []model.Card, id int) (model.Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}

// waitForSpeech blocks until the in-flight utterance finishes. The
// synthesizer has no completion callback at this level, so poll.
func waitForSpeech(s *speech.Synthesizer) {
	for s.Speaking() {
		time.Sleep(50 * time.Millisecond)
	}
}
