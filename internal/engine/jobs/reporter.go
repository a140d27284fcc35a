package jobs

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/ui/output"
	"github.com/SalimYassine/Minishell/internal/ui/style"
	"github.com/muesli/termenv"
)

// Reporter prints status lines. Lines come from the reaping goroutine as well
// as the main flow, so writes are serialised.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewReporter creates a Reporter writing to w. A nil w means stdout.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: output.New(w)}
}

// Status prints the line describing one state change.
func (r *Reporter) Status(st domain.ProcessStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(st.String(), termenv.RGBColor(string(style.ForStatus(st))))
}

// background prints the notice for a process that was started detached. The
// caller holds r.mu across the spawn.
func (r *Reporter) background(h domain.ProcessHandle) {
	r.write(fmt.Sprintf("[%d] running in background", h.Pid), termenv.RGBColor(string(style.Iris)))
}

func (r *Reporter) write(line string, color termenv.Color) {
	styled := r.out.String(line).Foreground(color)
	_, _ = r.out.WriteString(styled.String() + "\n")
}
