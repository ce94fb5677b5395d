package git

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sahilm/fuzzy"
)

// ErrNoMatchingBranch is returned when no local branch contains the
// requested name.
var ErrNoMatchingBranch = errors.New("does not match with any branches")

// maxSuggestions bounds the "did you mean" list of a failed match.
const maxSuggestions = 3

// Branches returns the short names of all local branches.
func (r *Repo) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return names, nil
}

// MatchBranch returns the branch that name refers to among branches.
//
// Candidates are the branches containing name. They are ordered by number
// of "/"-separated segments, then by length, and the last one wins: the
// most deeply qualified, longest match.
func MatchBranch(branches []string, name string) (string, error) {
	var candidates []string
	for _, b := range branches {
		if strings.Contains(b, name) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return "", noMatch(branches, name)
	}

	slices.SortStableFunc(candidates, func(a, b string) int {
		if c := strings.Count(a, "/") - strings.Count(b, "/"); c != 0 {
			return c
		}
		return len(a) - len(b)
	})
	return candidates[len(candidates)-1], nil
}

// ExactBranch returns name if it is one of branches.
func ExactBranch(branches []string, name string) (string, error) {
	if slices.Contains(branches, name) {
		return name, nil
	}
	return "", noMatch(branches, name)
}

func noMatch(branches []string, name string) error {
	err := fmt.Errorf("'%s' %w", name, ErrNoMatchingBranch)
	if s := suggest(branches, name); len(s) > 0 {
		return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(s, ", "))
	}
	return err
}

// suggest returns up to maxSuggestions branches that fuzzily match name,
// best first.
func suggest(branches []string, name string) []string {
	matches := fuzzy.Find(name, branches)
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
