// Package git is grm's adapter to the version-control engine.
//
// Read-only and local operations run in process through go-git:
//
//   - [Open], [IsRepo], [Discover]: open repositories
//   - [Repo.Config], [GlobalConfig]: read git configuration values
//   - [Init]: create a repository with an origin remote
//   - [Repo.Branches]: list local branches
//
// Operations that need the network or linked worktrees shell out to the git
// CLI, so the user's SSH keys, credential helpers and git version apply:
//
//   - [Clone]: clone into a managed path
//   - [Repo.AddWorktree]: add a linked worktree for an existing branch
//
// [MatchBranch] picks the branch a substring refers to.
package git
