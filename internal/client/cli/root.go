package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authservice/internal/flagx"
)

// valueFlags are every flag, ours or the config loader's, that takes a value.
var valueFlags = append(commandFlags(), "-a", "-n", "-x", "-i", "-c", "-config")

const usage = `Usage:
  sign-up  -u/--username <username> [-p/--password <password>]
  sign-in  -u/--username <username> [-p/--password <password>]
  sign-out -s/--session-token <session token>`

func (a *App) Root(ctx context.Context, args []string) int {
	cmd, rest := flagx.SplitCommand(args, valueFlags)

	switch cmd {
	case "sign-up":
		return a.SignUp(ctx, rest)
	case "sign-in":
		return a.SignIn(ctx, rest)
	case "sign-out":
		return a.SignOut(ctx, rest)
	case "help", "":
		fmt.Fprintln(a.out, usage)
		if cmd == "" {
			return ExitUsage
		}
		return ExitOK
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		fmt.Fprintln(a.out, usage)
		return ExitUsage
	}
}
