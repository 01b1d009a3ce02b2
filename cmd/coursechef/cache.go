package main

import (
	"fmt"

	"github.com/fwojciec/coursechef"
)

// Run executes the cache expire command.
func (c *CacheExpireCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.Expire(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d expired entries\n", n)
	return nil
}
