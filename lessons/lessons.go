// Package lessons lists every lesson in teaching order.
package lessons

import (
	"github.com/comalice/langtour"
	"github.com/comalice/langtour/lessons/controlflow"
	"github.com/comalice/langtour/lessons/enums"
	"github.com/comalice/langtour/lessons/functions"
	"github.com/comalice/langtour/lessons/structs"
	"github.com/comalice/langtour/lessons/variables"
)

// All builds a fresh copy of every lesson.
func All() []*langtour.Lesson {
	return []*langtour.Lesson{
		variables.Lesson(),
		functions.Lesson(),
		controlflow.Lesson(),
		structs.Lesson(),
		enums.Lesson(),
	}
}
