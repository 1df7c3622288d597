package commands

import (
	"fmt"

	"github.com/woozymasta/niu-cloud-cli/internal/config"

	"github.com/rs/zerolog/log"
)

// CreateToken logs in and prints the session token, or stores it in the token file.
type CreateToken struct {
	app *App

	Args struct {
		Account     string `positional-arg-name:"account"     description:"Account e-mail or phone number"`
		Password    string `positional-arg-name:"password"    description:"Account password"`
		CountryCode string `positional-arg-name:"countryCode" description:"Telephone country code, e.g. 49"`
	} `positional-args:"yes" required:"yes"`
}

// Execute implements flags.Commander.
func (c *CreateToken) Execute(_ []string) error {
	a := c.app
	client := a.newClient("", nil)

	token, err := client.CreateToken(a.ctx(), c.Args.Account, c.Args.Password, c.Args.CountryCode)
	if err != nil {
		return fmt.Errorf("create token: %w", err)
	}

	if a.TokenFile == "" {
		a.printf("%s\n", token)
		return nil
	}

	if err := config.Save(a.TokenFile, &config.Config{Token: token}); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	log.Info().Str("path", a.TokenFile).Msg("Token stored")
	a.printf("Complete.\n")

	return nil
}
