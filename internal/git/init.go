package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// OriginRemote is the name of the remote recorded by Init.
const OriginRemote = "origin"

// Init creates a repository at path whose origin is originURL and whose
// initial branch tracks origin/branch. Nothing is fetched. It fails if a
// repository already exists at path. Steps that completed before a failure
// are not rolled back.
func Init(path, originURL, branch string) (*Repo, error) {
	ref := plumbing.NewBranchReferenceName(branch)
	r, err := gogit.PlainInitWithOptions(path, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: ref},
	})
	if err != nil {
		return nil, fmt.Errorf("init %s: %w", path, err)
	}

	if _, err := r.CreateRemote(&config.RemoteConfig{
		Name: OriginRemote,
		URLs: []string{originURL},
	}); err != nil {
		return nil, fmt.Errorf("add remote %s: %w", OriginRemote, err)
	}

	if err := r.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: OriginRemote,
		Merge:  ref,
	}); err != nil {
		return nil, fmt.Errorf("configure branch %s: %w", branch, err)
	}

	return newRepo(r, path)
}
