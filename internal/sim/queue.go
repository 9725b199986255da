package sim

import "github.com/mwhitten/diffdrive/internal/kinematics"

// Queue holds the immutable ordered movement program and tracks which command
// comes next. The program is copied at construction and never mutated.
type Queue struct {
	commands []kinematics.Command
	next     int
}

func NewQueue(program []kinematics.Command) *Queue {
	return &Queue{commands: append([]kinematics.Command(nil), program...)}
}

// Peek returns the next command without consuming it.
func (q *Queue) Peek() (kinematics.Command, bool) {
	if q.Exhausted() {
		return kinematics.Command{}, false
	}
	return q.commands[q.next], true
}

// Advance consumes and returns the next command.
func (q *Queue) Advance() (kinematics.Command, bool) {
	cmd, ok := q.Peek()
	if ok {
		q.next++
	}
	return cmd, ok
}

func (q *Queue) Exhausted() bool { return q.next >= len(q.commands) }

func (q *Queue) Len() int { return len(q.commands) }
