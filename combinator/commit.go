package combinator

// NoCatch promotes any recoverable failure of p into a non-catchable
// failure carrying msg. Used to assert that once a prefix has matched,
// subsequent failure is a user-visible error, not a signal to try the next
// alternative.
func NoCatch(p Parser, msg string) Parser {
	return Parser{
		Desc:   "nocatch(" + p.Desc + ")",
		ErrMsg: msg,
		Process: func(c Cursor) (Cursor, error) {
			c1, err := p.Process(c)
			if err == nil {
				return c1, nil
			}
			if IsRecoverable(err) {
				return c1, &FatalError{Msg: msg, Start: c.Start, Stop: c.Stop}
			}
			return c1, err
		},
	}
}

// Commit runs trial as a lookahead — its output cursor is discarded and it
// remains fully backtrackable — then runs body from the original position
// with failures promoted to non-catchable. "Once a prefix has matched,
// subsequent failure is a user-visible error."
func Commit(trial, body Parser, msg string) Parser {
	return Parser{
		Desc:   "commit(" + trial.Desc + ", " + body.Desc + ")",
		ErrMsg: msg,
		Process: func(c Cursor) (Cursor, error) {
			if _, err := trial.Process(c); err != nil {
				return c, err
			}
			return NoCatch(body, msg).Process(c)
		},
	}
}

// CommitHead runs head; passes its accumulator to cont to obtain the
// continuation parser; runs that parser, starting at head's output cursor,
// with failures promoted to non-catchable. Expresses "once the head
// matches, the tail is mandatory".
func CommitHead(head Parser, cont func(any) Parser, msg string) Parser {
	return Parser{
		Desc:   "commit_head(" + head.Desc + ")",
		ErrMsg: msg,
		Process: func(c Cursor) (Cursor, error) {
			c1, err := head.Process(c)
			if err != nil {
				return c1, err
			}
			next := cont(c1.Acc)
			return NoCatch(next, msg).Process(c1)
		},
	}
}
