package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/cashpoint/internal/domain/models"
	"github.com/mamadbah2/cashpoint/internal/service/vault"
)

// Shell is the interactive console menu over the vault service. It owns input
// parsing and the mapping of core error kinds to user-facing text; all cash
// logic stays in the service.
type Shell struct {
	svc    vault.CashService
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// New builds a shell reading commands from in and printing to out.
func New(svc vault.CashService, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (s *Shell) Run() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "=== ATM SYSTEM ===")
		fmt.Fprintln(s.out, "1. Withdraw Cash")
		fmt.Fprintln(s.out, "2. Admin: Add Cash")
		fmt.Fprintln(s.out, "3. Admin: View Status")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("Select Option: ")
		if !ok {
			fmt.Fprintln(s.out, "\nExiting...")
			return
		}

		switch choice {
		case "1":
			s.withdraw()
		case "2":
			s.addCash()
		case "3":
			s.printStatus()
		case "4":
			fmt.Fprintln(s.out, "Thank you for banking with us.")
			return
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) withdraw() {
	amount, ok := s.promptInt("Enter withdrawal amount: ")
	if !ok {
		return
	}

	plan, err := s.svc.Withdraw(amount)
	if err != nil && plan == nil {
		s.fail(err)
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Transaction Successful!")
	fmt.Fprintln(s.out, "Dispensing:")
	for _, denom := range sortedDenominations(plan) {
		fmt.Fprintf(s.out, "  %d x %d\n", denom, plan[denom])
	}

	// The notes were dispensed but the state file write failed; the operator
	// has to know before the next power cycle.
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
	}
}

func (s *Shell) addCash() {
	denom, ok := s.promptInt("Enter denomination: ")
	if !ok {
		return
	}

	count, ok := s.promptInt("Enter quantity to add: ")
	if !ok {
		return
	}

	if err := s.svc.AddCash(models.Denomination(denom), count); err != nil {
		s.fail(err)
		return
	}

	fmt.Fprintf(s.out, "Added %d notes of %d.\n", count, denom)
}

func (s *Shell) printStatus() {
	report := s.svc.StatusReport()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- ATM Status ---")
	for _, row := range report.Rows {
		fmt.Fprintf(s.out, "%-4d: %d notes = %d\n", row.Denomination, row.Count, row.Value)
	}
	fmt.Fprintf(s.out, "Total Cash: %d\n", report.Total)
	fmt.Fprintln(s.out, "------------------")
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) promptInt(label string) (int, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Input Error: Please enter a valid number.")
		return 0, false
	}
	return value, true
}

// fail prints the user-facing text for err. Errors outside the core taxonomy
// get logged too, since the console text for those carries no detail.
func (s *Shell) fail(err error) {
	if !errors.Is(err, models.ErrInvalidAmount) &&
		!errors.Is(err, models.ErrInsufficientFunds) &&
		!errors.Is(err, models.ErrStorage) {
		s.logger.Error("unexpected console error", zap.Error(err))
	}
	fmt.Fprintln(s.out, UserMessage(err))
}

// UserMessage translates a core error into the text shown on the console.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		return "Transaction Declined: " + reason(err)
	case errors.Is(err, models.ErrInvalidAmount):
		return "Input Error: " + reason(err)
	case errors.Is(err, models.ErrStorage):
		return "Critical Error: Could not save transaction state."
	default:
		return "An unexpected system error occurred. Please contact support."
	}
}

// reason strips the sentinel prefix so the console shows only the cause.
func reason(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

func sortedDenominations(plan models.WithdrawalPlan) []models.Denomination {
	denoms := make([]models.Denomination, 0, len(plan))
	for denom := range plan {
		denoms = append(denoms, denom)
	}
	sort.Slice(denoms, func(i, j int) bool { return denoms[i] > denoms[j] })
	return denoms
}
