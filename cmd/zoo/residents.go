package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"animal-zoo/internal/zooclient"

	"github.com/spf13/cobra"
)

func newAdmitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "admit <type> <args...>",
		Short: "Admit an animal through the factory",
		Long: `Asks the API to build an animal and admit it.
  dog  <name> <age> <breed>
  cat  <name> <age> <color>
  bird <name> <age> <wingspan>`,
		Example: "  zoo admit dog Rex 5 doberman",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			ctorArgs := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				ctorArgs = append(ctorArgs, a)
			}

			res, err := c.Admit(cmd.Context(), args[0], ctorArgs...)
			if err != nil {
				return err
			}
			printResident(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List residents in admission order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			items, err := c.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "no residents")
				return nil
			}
			for _, r := range items {
				printResident(out, r)
			}
			return nil
		},
	}
}

func newActCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "act <id> <action> [arg]",
		Short: "Make a resident perform an action",
		Long: `Actions: sound, move, eat <food>, describe,
learn_trick <trick>, perform_trick <trick>, tricks (dogs),
purr, lose_life (cats), fly, set_fly_ability <true|false> (birds).`,
		Example: "  zoo act 3f2a... learn_trick sit",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := buildAction(args[1], args[2:])
			if err != nil {
				return err
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := c.Act(cmd.Context(), args[0], action)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
			}
			printResident(out, res.Resident)
			return nil
		},
	}
}

func newJournalCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal <id>",
		Short: "Show what happened to a resident, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			entries, err := c.Journal(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-14s %s\n", e.RecordedAt.Format("2006-01-02 15:04:05"), e.Action, e.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries (server default when 0)")
	return cmd
}

func newCensusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "census",
		Short: "Count residents by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			census, err := c.Census(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dogs: %d, cats: %d, birds: %d, total: %d\n",
				census.Dogs, census.Cats, census.Birds, census.Total)
			return nil
		},
	}
}

// buildAction traduce el argumento opcional al campo que usa cada acción.
func buildAction(name string, rest []string) (zooclient.Action, error) {
	a := zooclient.Action{Action: strings.ToLower(strings.TrimSpace(name))}
	if len(rest) == 0 {
		return a, nil
	}

	arg := rest[0]
	switch a.Action {
	case "eat":
		a.Food = arg
	case "learn_trick", "perform_trick":
		a.Trick = arg
	case "set_fly_ability":
		v, err := strconv.ParseBool(arg)
		if err != nil {
			return zooclient.Action{}, fmt.Errorf("set_fly_ability expects true or false, got %q", arg)
		}
		a.CanFly = &v
	default:
		return zooclient.Action{}, fmt.Errorf("%s takes no argument", a.Action)
	}
	return a, nil
}

func printResident(w io.Writer, r zooclient.Resident) {
	var extra []string
	if r.Breed != nil {
		extra = append(extra, "breed="+*r.Breed)
	}
	if len(r.Tricks) > 0 {
		extra = append(extra, "tricks="+strings.Join(r.Tricks, ","))
	}
	if r.Color != nil {
		extra = append(extra, "color="+*r.Color)
	}
	if r.Lives != nil {
		extra = append(extra, "lives="+strconv.Itoa(*r.Lives))
	}
	if r.Wingspan != nil {
		extra = append(extra, "wingspan="+strconv.FormatFloat(*r.Wingspan, 'g', -1, 64))
	}
	if r.CanFly != nil {
		extra = append(extra, "can_fly="+strconv.FormatBool(*r.CanFly))
	}

	line := fmt.Sprintf("%s  %s", r.ID, r.Description)
	if len(extra) > 0 {
		line += "  [" + strings.Join(extra, " ") + "]"
	}
	fmt.Fprintln(w, line)
}
