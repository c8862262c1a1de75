package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Update personal information",
	Long:  "Update personal information. Only the flags that are given change; pass an empty value to clear a field.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runPersonal),
}

var (
	personalFullName  string
	personalJobTitle  string
	personalEmail     string
	personalPhone     string
	personalLocation  string
	personalLinkedIn  string
	personalGitHub    string
	personalPortfolio string
	personalPhoto     string
)

func init() {
	personalCmd.Flags().StringVar(&personalFullName, "full-name", "", "Full name")
	personalCmd.Flags().StringVar(&personalJobTitle, "job-title", "", "Job title")
	personalCmd.Flags().StringVar(&personalEmail, "email", "", "Email address")
	personalCmd.Flags().StringVar(&personalPhone, "phone", "", "Phone number")
	personalCmd.Flags().StringVar(&personalLocation, "location", "", "Location")
	personalCmd.Flags().StringVar(&personalLinkedIn, "linkedin", "", "LinkedIn profile")
	personalCmd.Flags().StringVar(&personalGitHub, "github", "", "GitHub profile")
	personalCmd.Flags().StringVar(&personalPortfolio, "portfolio", "", "Portfolio URL")
	personalCmd.Flags().StringVar(&personalPhoto, "photo", "", "Photo URL or data URI")

	rootCmd.AddCommand(personalCmd)
}

// changedString returns a pointer to value when the named flag was set.
func changedString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func runPersonal(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	patch := types.PersonalInfoPatch{
		FullName:  changedString(cmd, "full-name", personalFullName),
		JobTitle:  changedString(cmd, "job-title", personalJobTitle),
		Email:     changedString(cmd, "email", personalEmail),
		Phone:     changedString(cmd, "phone", personalPhone),
		Location:  changedString(cmd, "location", personalLocation),
		LinkedIn:  changedString(cmd, "linkedin", personalLinkedIn),
		GitHub:    changedString(cmd, "github", personalGitHub),
		Portfolio: changedString(cmd, "portfolio", personalPortfolio),
		Photo:     changedString(cmd, "photo", personalPhoto),
	}
	if patch.Empty() {
		return fmt.Errorf("nothing to update: pass at least one field flag")
	}

	if err := a.dispatch(ctx, store.UpdatePersonalInfo{Patch: patch}); err != nil {
		return err
	}
	a.printer.PrintDocument(a.store.State())
	return nil
}
