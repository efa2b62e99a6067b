package main

import (
	"fmt"

	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the node kinds of the IR and the syntax tree",
		Args:  cobra.NoArgs,
		RunE:  kindsHandler,
	}
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	cmd.Flags().Bool("syntax", false, "list syntax tree kinds instead of IR kinds")
	return cmd
}

type kindInfo struct {
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

func kindList(syntax bool) []kindInfo {
	var out []kindInfo
	if syntax {
		for _, k := range ast.Kinds() {
			out = append(out, kindInfo{Name: k.String()})
		}
		return out
	}
	for _, k := range ir.Kinds() {
		out = append(out, kindInfo{Name: k.String(), Tag: k.Tag()})
	}
	return out
}

func kindsHandler(cmd *cobra.Command, args []string) error {
	syntax, _ := cmd.Flags().GetBool("syntax")
	format, _ := cmd.Flags().GetString("output")
	kinds := kindList(syntax)
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		for _, k := range kinds {
			if k.Tag == "" {
				fmt.Fprintln(out, k.Name)
			} else {
				fmt.Fprintf(out, "%-28s %s\n", k.Name, k.Tag)
			}
		}
		return nil
	case "json":
		f := prettyjson.NewFormatter()
		f.DisabledColor = !useColor(out)
		data, err := f.Marshal(kinds)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
