package main

import (
	"fmt"
	"strings"

	"formbuilder/src/models"
	"formbuilder/src/qrcode"
	"formbuilder/src/renderer"
	"formbuilder/src/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) createCmd() *cobra.Command {
	var (
		file    string
		preview bool
	)
	cmd := &cobra.Command{
		Use:   "create -f forms.yaml",
		Short: "Create every form described in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := seeder.LoadDefinitions(file)
			if err != nil {
				return err
			}
			if preview {
				for _, def := range defs {
					e := seeder.Compose(def)
					e.TogglePreview()
					printView(c, e.Preview())
					fmt.Fprintln(c.out)
				}
				return nil
			}

			saved, err := seeder.New(c.api, c.api, c.api, c.log).SeedForms(cmd.Context(), defs)
			for _, f := range saved {
				fmt.Fprintf(c.out, "%s\t%s\n", f.FormID, c.api.Resolve(f.PreviewLink))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with form definitions")
	cmd.Flags().BoolVar(&preview, "preview", false, "print the forms as respondents would see them without saving")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <form-id>",
		Short: "Print a form the way a respondent sees it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := renderer.New(args[0], c.api, c.api)
			if err := r.Load(cmd.Context()); err != nil {
				return err
			}
			v, err := r.View()
			if err != nil {
				return err
			}
			printView(c, v)
			return nil
		},
	}
}

func printView(c *cli, v renderer.View) {
	fmt.Fprintln(c.out, v.Title)
	if v.HeaderImage != "" {
		fmt.Fprintf(c.out, "[image %s]\n", v.HeaderImage)
	}
	for i, q := range v.Questions {
		fmt.Fprintf(c.out, "\n%d. %s (%s) id=%s\n", i+1, q.Label, q.Type, q.ID)
		if q.Image != "" {
			fmt.Fprintf(c.out, "   [image %s]\n", q.Image)
		}
		for _, opt := range q.Options {
			fmt.Fprintf(c.out, "   [ ] %s\n", opt)
		}
		if len(q.Columns) > 0 {
			fmt.Fprintf(c.out, "   %s\n", strings.Join(q.Columns, " | "))
		}
		for _, row := range q.Rows {
			fmt.Fprintf(c.out, "   %s\n", row)
		}
	}
}

func (c *cli) fillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill <form-id>",
		Short: "Answer a form interactively and submit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := renderer.New(args[0], c.api, c.api)
			if err := r.Load(cmd.Context()); err != nil {
				return err
			}
			if err := r.Fill(cmd.Context(), c.prompt(c.out)); err != nil {
				return err
			}
			if err := r.Submit(cmd.Context()); err != nil {
				return err
			}
			c.log.Debug("response submitted", zap.String("formId", args[0]), zap.Int("answers", len(r.Answers())))
			fmt.Fprintln(c.out, "Response saved successfully")
			return nil
		},
	}
}

func (c *cli) respondCmd() *cobra.Command {
	var answers []string
	cmd := &cobra.Command{
		Use:   "respond <form-id> --answer qid=value ...",
		Short: "Submit a response without prompting",
		Long: `Submits one response built from --answer flags. The form id is sent as given;
the server does not check it. "true" and "false" are sent as booleans.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			req := models.SubmitResponseRequest{FormID: args[0], Responses: parsed}
			if err := c.api.SubmitResponse(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Response saved successfully")
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "answer as questionId=value, repeatable")
	return cmd
}

// parseAnswers keeps flag order.
func parseAnswers(raw []string) ([]models.Answer, error) {
	out := make([]models.Answer, 0, len(raw))
	for _, kv := range raw {
		qid, value, ok := strings.Cut(kv, "=")
		if !ok || qid == "" {
			return nil, fmt.Errorf("answer %q: want questionId=value", kv)
		}
		var answer any = value
		switch value {
		case "true":
			answer = true
		case "false":
			answer = false
		}
		out = append(out, models.Answer{QuestionID: qid, Answer: answer})
	}
	return out, nil
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <form-id>",
		Short: "Show how many responses a form has received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.api.GetFormStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "form:      %s\nresponses: %d\n", s.FormID, s.ResponseCount)
			if s.LastResponseAt != nil {
				fmt.Fprintf(c.out, "last:      %s\n", s.LastResponseAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}

func (c *cli) shareCmd() *cobra.Command {
	var png string
	cmd := &cobra.Command{
		Use:   "share <form-id>",
		Short: "Print a form's share link as a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link := c.api.ShareLink(args[0])
			fmt.Fprintln(c.out, link)
			if png != "" {
				return qrcode.WritePNG(link, png, qrcode.DefaultSize)
			}
			code, err := qrcode.Terminal(link)
			if err != nil {
				return err
			}
			fmt.Fprint(c.out, code)
			return nil
		},
	}
	cmd.Flags().StringVar(&png, "png", "", "write the QR code to this PNG file instead of the terminal")
	return cmd
}
