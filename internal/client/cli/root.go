package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if sess := a.sessions.Current(); sess != nil {
		return fmt.Sprintf("(%s %s)", sess.User.Username, a.activeTab)
	}
	return "(logged out)"
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to herbtrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
