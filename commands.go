package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"childcare-app-server/internal/client"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/publish"
	"childcare-app-server/internal/repository"
	"childcare-app-server/internal/session"
	"childcare-app-server/internal/utils"
)

func sessionPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("session")
	if path != "" {
		return path, nil
	}
	return session.DefaultPath()
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			save, _ := cmd.Flags().GetBool("save")
			ensure, _ := cmd.Flags().GetBool("ensure-user")
			apiURL, _ := cmd.Flags().GetString("api")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if ensure {
				db, err := openDB(cfg)
				if err != nil {
					return err
				}
				if err := ensureUser(cmd.Context(), repository.New(db).Users, userID); err != nil {
					return err
				}
			}

			ttl := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
			tok, err := utils.GenerateAccessToken(userID, cfg.JWTSecret, ttl)
			if err != nil {
				return errors.Wrap(err, "sign token")
			}

			if !save {
				fmt.Println(tok)
				return nil
			}

			path, err := sessionPath(cmd)
			if err != nil {
				return err
			}
			s, err := session.Load(path)
			if err != nil {
				return err
			}
			if apiURL == "" {
				apiURL = cfg.AppURL
			}
			s.BaseURL = apiURL
			s.Token = tok
			if err := s.Save(path); err != nil {
				return err
			}
			fmt.Printf("Token for %s saved to %s (expires in %s).\n", userID, path, ttl)
			return nil
		},
	}
	cmd.Flags().String("user", "", "External user id (JWT subject)")
	cmd.Flags().Bool("save", false, "Store the token in the session file")
	cmd.Flags().Bool("ensure-user", false, "Create the user row if it does not exist")
	cmd.Flags().String("api", "", "API base URL stored with --save (default: APP_URL)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func ensureUser(ctx context.Context, users repository.UserRepository, userID string) error {
	_, err := users.FindByExternalID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return users.Create(ctx, &models.User{UserID: userID})
}

// loggedInClient loads the session and builds an API client from it.
func loggedInClient(cmd *cobra.Command) (*session.Session, string, *client.Client, error) {
	path, err := sessionPath(cmd)
	if err != nil {
		return nil, "", nil, err
	}
	s, err := session.Load(path)
	if err != nil {
		return nil, "", nil, err
	}
	if err := s.RequireToken(); err != nil {
		return nil, "", nil, err
	}
	return s, path, client.New(s.BaseURL, s.Token), nil
}

func selectChildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select-child <childId>",
		Short: "Select the child later commands act on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, path, c, err := loggedInClient(cmd)
			if err != nil {
				return err
			}

			child, err := c.GetChild(cmd.Context(), args[0])
			if err != nil {
				return errors.Wrap(err, "select child")
			}
			s.SelectChild(child.ID)
			if err := s.Save(path); err != nil {
				return err
			}
			fmt.Printf("Selected %s (%d세).\n", child.Name, child.Age)
			return nil
		},
	}
}

func publishReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish-report",
		Short: "Upload a rendered report image and create a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, _ := cmd.Flags().GetString("image")
			title, _ := cmd.Flags().GetString("title")
			verbose, _ := cmd.Flags().GetBool("verbose")

			_, _, c, err := loggedInClient(cmd)
			if err != nil {
				return err
			}

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			saga := publish.New(publish.FileCapturer{Path: image}, c,
				publish.WithLogger(logger),
				publish.WithObserver(func(s publish.State) { fmt.Fprintf(os.Stderr, "- %s\n", s) }),
			)
			res, err := saga.Run(ctx, title)
			if err != nil {
				fmt.Println(res.Notice)
				if res.CompensationErr != nil {
					fmt.Fprintf(os.Stderr, "uploaded image %s could not be removed: %v\n", res.Image.ID, res.CompensationErr)
				}
				return err
			}
			fmt.Printf("Report %s published: %s\n", res.Report.ID, res.Report.ImageURL)
			return nil
		},
	}
	cmd.Flags().String("image", "", "Rendered report image")
	cmd.Flags().String("title", "", "Report title")
	cmd.Flags().BoolP("verbose", "v", false, "Log every state transition")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
