package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/flagx"
	pb "github.com/dmitrijs2005/authservice/internal/proto"
)

type commandArgs struct {
	username     string
	password     string
	sessionToken string
}

// commandFlagNames pairs every short flag with its long alias.
var commandFlagNames = [][2]string{
	{"u", "username"},
	{"p", "password"},
	{"s", "session-token"},
}

// commandFlags lists each name in both its "-" and "--" spelling, which is
// what flag.Parse accepts.
func commandFlags() []string {
	out := make([]string, 0, len(commandFlagNames)*4)
	for _, pair := range commandFlagNames {
		for _, name := range pair {
			out = append(out, "-"+name, "--"+name)
		}
	}
	return out
}

func parseCommandArgs(name string, args []string) (*commandArgs, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var c commandArgs
	targets := []*string{&c.username, &c.password, &c.sessionToken}
	for i, pair := range commandFlagNames {
		fs.StringVar(targets[i], pair[0], "", pair[1])
		fs.StringVar(targets[i], pair[1], "", pair[1])
	}

	if err := fs.Parse(flagx.FilterArgs(args, commandFlags())); err != nil {
		return nil, err
	}
	return &c, nil
}

// credentials fills in whatever the username and password flags left out by
// prompting.
func (a *App) credentials(c *commandArgs) (string, string, error) {
	username := c.username
	if username == "" {
		u, err := GetSimpleText(a.reader, "Enter username", a.out)
		if err != nil {
			return "", "", err
		}
		username = u
	}

	if c.password != "" {
		return username, c.password, nil
	}

	pw, err := GetPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)
	return username, string(pw), nil
}

func (a *App) SignUp(ctx context.Context, args []string) int {
	c, err := parseCommandArgs("sign-up", args)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitUsage
	}
	username, password, err := a.credentials(c)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitFailure
	}

	code, err := a.client.SignUp(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitFailure
	}

	fmt.Fprintf(a.out, "SignUp status: %s\n", code)
	return exitCode(code)
}

func (a *App) SignIn(ctx context.Context, args []string) int {
	c, err := parseCommandArgs("sign-in", args)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitUsage
	}
	username, password, err := a.credentials(c)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitFailure
	}

	res, err := a.client.SignIn(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitFailure
	}

	fmt.Fprintf(a.out, "SignIn status: %s\n", res.Status)
	if res.Status == pb.StatusCode_OK {
		fmt.Fprintf(a.out, "User: %s\n", res.UserID)
		fmt.Fprintf(a.out, "Session token: %s\n", res.SessionToken)
	}
	return exitCode(res.Status)
}

func (a *App) SignOut(ctx context.Context, args []string) int {
	c, err := parseCommandArgs("sign-out", args)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitUsage
	}
	if c.sessionToken == "" {
		fmt.Fprintln(a.out, "sign-out requires -s/--session-token <session token>")
		return ExitUsage
	}

	code, err := a.client.SignOut(ctx, c.sessionToken)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return ExitFailure
	}

	fmt.Fprintf(a.out, "SignOut status: %s\n", code)
	return exitCode(code)
}

func exitCode(code pb.StatusCode) int {
	if code == pb.StatusCode_OK {
		return ExitOK
	}
	return ExitRejected
}
