package mapping

import (
	"fmt"
	"reflect"
)

// requireType panics unless member has type want or *want.
// A mismatch here is a programming error in the mapping configuration.
func requireType(member Member, want reflect.Type) {
	if member.Type == want || member.Type == reflect.PointerTo(want) {
		return
	}

	panic(fmt.Sprintf("mapping: %s has type %s, want %s or *%s", member, member.Type, want, want))
}
