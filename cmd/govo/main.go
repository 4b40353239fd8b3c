// Command govo is a minimal line-oriented REPL over the session store,
// grounded on the teacher's zurichess/uci.go Execute(line)
// dispatch-by-first-word loop and zurichess/main.go's
// bufio.NewReader(os.Stdin) read loop. JSON, HTTP and CORS are entirely
// out of scope (spec §1); this is plain text over stdio.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/G4mingJon4s/govo/notation"
	"github.com/G4mingJon4s/govo/search"
	"github.com/G4mingJon4s/govo/session"
)

func main() {
	store := session.NewStore()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if execute(store, line) {
			return
		}
	}
}

// execute dispatches one command line by its first word, mirroring
// uci.Execute's shape. Returns true if the REPL should stop.
func execute(store *session.Store, line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "new":
		cmdNew(store, args)
	case "play":
		cmdPlay(store, args)
	case "undo":
		cmdUndo(store, args)
	case "eval":
		cmdEval(store, args)
	case "show":
		cmdShow(store, args)
	case "rm":
		cmdRm(store, args)
	default:
		fmt.Printf("error: unknown command %q\n", cmd)
	}
	return false
}

func cmdNew(store *session.Store, args []string) {
	if len(args) != 4 {
		fmt.Println("error: usage: new <rep> <size> <turn> <komi>")
		return
	}
	size, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("error: bad size: %v\n", err)
		return
	}
	komi, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		fmt.Printf("error: bad komi: %v\n", err)
		return
	}
	b, err := notation.ParseBoard(args[0], size, args[2], komi)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	id, err := store.Create(b.Representation(), size, b.Turn(), komi, defaultSearchConfig())
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("ok: session %d\n", id)
}

func cmdPlay(store *session.Store, args []string) {
	if len(args) != 2 {
		fmt.Println("error: usage: play <id> <move>")
		return
	}
	id, s, err := lookupSession(store, args[0])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	m, isUndo, err := notation.ParseMove(args[1], s.Board.Size())
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if isUndo {
		fmt.Println("error: use the undo command, not play undo")
		return
	}
	if err := store.ApplyMove(id, m); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func cmdUndo(store *session.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("error: usage: undo <id>")
		return
	}
	id, _, err := lookupSession(store, args[0])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if err := store.Undo(id); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func cmdEval(store *session.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("error: usage: eval <id>")
		return
	}
	id, _, err := lookupSession(store, args[0])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	cache, err := store.Evaluate(context.Background(), id)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("ok: elapsed=%s\n", cache.Elapsed)
	for _, ms := range cache.Moves {
		fmt.Printf("  %s %.3f\n", notation.RenderMove(ms.Move), ms.Score)
	}
}

func cmdShow(store *session.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("error: usage: show <id>")
		return
	}
	_, s, err := lookupSession(store, args[0])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	score, err := store.Score(s.ID)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("turn=%s size=%d komi=%.1f score=%.3f\n%s\n",
		s.Board.Turn(), s.Board.Size(), s.Board.Komi(), score, s.Board.Representation())
}

func cmdRm(store *session.Store, args []string) {
	if len(args) != 1 {
		fmt.Println("error: usage: rm <id>")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Printf("error: bad id: %v\n", err)
		return
	}
	if err := store.Delete(id); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func lookupSession(store *session.Store, idText string) (uint64, *session.Session, error) {
	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		return 0, nil, err
	}
	s, err := store.Get(id)
	if err != nil {
		return 0, nil, err
	}
	return id, s, nil
}

// defaultSearchConfig is every new session's search configuration,
// logging through search.DefaultLogger by default, matching the
// teacher's own non-nil-logger-by-default idiom.
func defaultSearchConfig() search.Config {
	return search.Config{
		Depth:  4,
		Cache:  search.CacheConfig{Capacity: 1 << 16},
		Logger: search.DefaultLogger,
	}
}
