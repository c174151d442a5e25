package auth

import "context"

const sessionKeyPrefix = "trainsight-session||"

// Checker is implemented by LoginChecker and by test doubles in handler tests.
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}
