// Package cmd runs external commands with proper error handling.
//
// Failures are returned as [*Error], which carries the command line and
// whatever the command wrote to stderr, so users see why git failed and not
// just its exit status.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, dir, "git", "fetch"); err != nil {
//	    return fmt.Errorf("fetch: %w", err)
//	}
//
//	// For commands whose output is needed:
//	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "HEAD")
//
//	// For commands whose output goes to the user as it is produced:
//	err := cmd.StreamContext(ctx, "", os.Stderr, os.Stderr, "git", "clone", url, dest)
//
// In verbose mode every command is logged with its duration through the
// logger attached to ctx.
package cmd
