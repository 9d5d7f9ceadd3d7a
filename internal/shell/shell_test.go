package shell

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/cashpoint/internal/domain/models"
)

type stubCashService struct {
	withdrawPlan models.WithdrawalPlan
	withdrawErr  error
	addCashErr   error
	report       models.StatusReport
	lastAmount   int
}

func (s *stubCashService) Withdraw(amount int) (models.WithdrawalPlan, error) {
	s.lastAmount = amount
	return s.withdrawPlan, s.withdrawErr
}

func (s *stubCashService) AddCash(denomination models.Denomination, count int) error {
	return s.addCashErr
}

func (s *stubCashService) TotalValue() int { return s.report.Total }

func (s *stubCashService) StatusReport() models.StatusReport { return s.report }

func runScript(svc *stubCashService, lines ...string) string {
	var out bytes.Buffer
	sh := New(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, nil)
	sh.Run()
	return out.String()
}

func TestRunWithdrawal(t *testing.T) {
	svc := &stubCashService{withdrawPlan: models.WithdrawalPlan{500: 1, 200: 1}}

	out := runScript(svc, "1", "700", "4")

	assert.Equal(t, 700, svc.lastAmount)
	assert.Contains(t, out, "Transaction Successful!")
	assert.Contains(t, out, "500 x 1")
	assert.Contains(t, out, "200 x 1")
	assert.Contains(t, out, "Thank you for banking with us.")
}

func TestRunRejectsNonNumericAmount(t *testing.T) {
	svc := &stubCashService{}

	out := runScript(svc, "1", "seven hundred", "4")

	assert.Contains(t, out, "Input Error: Please enter a valid number.")
	assert.Zero(t, svc.lastAmount)
}

func TestRunShowsStatus(t *testing.T) {
	svc := &stubCashService{report: models.StatusReport{
		Rows: []models.DenominationStatus{
			{Denomination: 500, Count: 20, Value: 10000},
			{Denomination: 200, Count: 20, Value: 4000},
			{Denomination: 100, Count: 20, Value: 2000},
		},
		Total: 16000,
	}}

	out := runScript(svc, "3", "4")

	assert.Contains(t, out, "--- ATM Status ---")
	assert.Contains(t, out, "500 : 20 notes = 10000")
	assert.Contains(t, out, "Total Cash: 16000")
}

func TestRunUnknownOption(t *testing.T) {
	out := runScript(&stubCashService{}, "9", "4")
	assert.Contains(t, out, "Invalid option. Please try again.")
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "insufficient funds",
			err:  fmt.Errorf("%w: cash reserves below requested amount", models.ErrInsufficientFunds),
			want: "Transaction Declined: cash reserves below requested amount",
		},
		{
			name: "invalid amount",
			err:  fmt.Errorf("%w: amount must be a multiple of 100", models.ErrInvalidAmount),
			want: "Input Error: amount must be a multiple of 100",
		},
		{
			name: "storage failure",
			err:  fmt.Errorf("%w: replace cash_state.json", models.ErrStorage),
			want: "Critical Error: Could not save transaction state.",
		},
		{
			name: "unexpected error",
			err:  fmt.Errorf("boom"),
			want: "An unexpected system error occurred. Please contact support.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
