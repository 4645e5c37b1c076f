package cli

import (
	"fmt"
	"os"
	"strings"
)

// tokenFile lives in the current working directory so different projects
// can keep different sessions.
const tokenFile = "token.txt"

func saveToken(token string) error {
	if err := os.WriteFile(tokenFile, []byte(token), 0o600); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func loadToken() (string, error) {
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return "", fmt.Errorf("not logged in (run login or register first): %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
