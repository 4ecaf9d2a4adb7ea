package main

const exitLoss = 2

type exitError struct {
	code int
	err  error
}

func lossError(err error) exitError {
	return exitError{code: exitLoss, err: err}
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return 1
	}
	return e.code
}
