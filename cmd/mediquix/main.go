// Command mediquix runs the MediQuix medical-camp registration API.
//
//	mediquix serve            # start the HTTP API
//	mediquix token --email a@x.io
//
// Configuration comes from the environment; see internal/infrastructure/config.
//
// @title                       MediQuix API
// @version                     1.0
// @description                 Medical-camp registration backend: accounts, camps, camp joins, feedback and payment intents.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mediquix",
	Short:         "MediQuix medical-camp registration API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
