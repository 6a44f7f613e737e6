package workflow

import (
	"testing"

	"github.com/neobank/payflow/client"
	"github.com/neobank/payflow/util"
	"github.com/stretchr/testify/require"
)

func twoAccounts() []client.Account {
	return []client.Account{
		{ID: 1, AccountNumber: "A1", AccountType: client.AccountTypeSavings, Balance: util.RandomMoney()},
		{ID: 2, AccountNumber: "A2", AccountType: client.AccountTypeCurrent, Balance: util.RandomMoney()},
	}
}

func TestBuildPendingTransaction(t *testing.T) {
	testCases := []struct {
		name        string
		form        FormState
		accounts    []client.Account
		wantErr     string
		checkResult func(t *testing.T, pending *PendingTransaction)
	}{
		{
			name:     "SelfTransferOK",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, DestAccountID: 2, Amount: "100"},
			accounts: twoAccounts(),
			checkResult: func(t *testing.T, pending *PendingTransaction) {
				require.Equal(t, ModeSelf, pending.Mode)
				require.Equal(t, int64(1), pending.SourceAccountID)
				require.Equal(t, "A2", pending.ToAccountNumber)
				require.Equal(t, float64(100), pending.Amount)
			},
		},
		{
			name:     "ExternalTransferOK",
			form:     FormState{Mode: ModeToAccount, SourceAccountID: 1, ExternalAccountNumber: " XYZ123 ", Amount: "42.50"},
			accounts: twoAccounts(),
			checkResult: func(t *testing.T, pending *PendingTransaction) {
				require.Equal(t, ModeToAccount, pending.Mode)
				require.Equal(t, "XYZ123", pending.ToAccountNumber)
				require.Equal(t, 42.5, pending.Amount)
			},
		},
		{
			name: "CardPaymentOK",
			form: FormState{Mode: ModeCard, SourceCardID: 9, MerchantName: "BOOKSTORE", Amount: "50"},
			checkResult: func(t *testing.T, pending *PendingTransaction) {
				require.Equal(t, ModeCard, pending.Mode)
				require.Equal(t, int64(9), pending.CardID)
				require.Equal(t, "BOOKSTORE", pending.Merchant)
			},
		},
		{
			name:     "EmptyAmount",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, DestAccountID: 2, Amount: ""},
			accounts: twoAccounts(),
			wantErr:  MsgInvalidAmount,
		},
		{
			name:     "NonNumericAmount",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, DestAccountID: 2, Amount: "abc"},
			accounts: twoAccounts(),
			wantErr:  MsgInvalidAmount,
		},
		{
			name:     "ZeroAmount",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, DestAccountID: 2, Amount: "0"},
			accounts: twoAccounts(),
			wantErr:  MsgInvalidAmount,
		},
		{
			name:     "InfiniteAmount",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, DestAccountID: 2, Amount: "Inf"},
			accounts: twoAccounts(),
			wantErr:  MsgInvalidAmount,
		},
		{
			// amount is checked before the destination
			name:     "NegativeAmountBeforeDestinationCheck",
			form:     FormState{Mode: ModeToAccount, SourceAccountID: 1, ExternalAccountNumber: "XYZ123", Amount: "-5"},
			accounts: twoAccounts(),
			wantErr:  MsgInvalidAmount,
		},
		{
			name:     "SelfTransferSameAccount",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, DestAccountID: 1, Amount: "100"},
			accounts: twoAccounts(),
			wantErr:  MsgSameAccount,
		},
		{
			name:     "SelfTransferNoDestination",
			form:     FormState{Mode: ModeSelf, SourceAccountID: 1, Amount: "100"},
			accounts: []client.Account{{ID: 1, AccountNumber: "A1", Balance: 100}},
			wantErr:  MsgSameAccount,
		},
		{
			name:     "ExternalTransferEmptyDestination",
			form:     FormState{Mode: ModeToAccount, SourceAccountID: 1, ExternalAccountNumber: "  ", Amount: "100"},
			accounts: twoAccounts(),
			wantErr:  MsgMissingTransferField,
		},
		{
			name:    "CardPaymentEmptyMerchant",
			form:    FormState{Mode: ModeCard, SourceCardID: 9, MerchantName: "", Amount: "50"},
			wantErr: MsgMissingCardField,
		},
		{
			name:    "CardPaymentNoCard",
			form:    FormState{Mode: ModeCard, MerchantName: "BOOKSTORE", Amount: "50"},
			wantErr: MsgMissingCardField,
		},
		{
			name:    "UnknownMode",
			form:    FormState{Mode: "WIRE", Amount: "50"},
			wantErr: MsgUnknownMode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pending, err := buildPendingTransaction(tc.form, tc.accounts)

			if tc.wantErr != "" {
				require.Nil(t, pending)

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, tc.wantErr, validationErr.Message)
				return
			}

			require.NoError(t, err)
			tc.checkResult(t, pending)
		})
	}
}

func TestDestinationCandidatesExcludeSource(t *testing.T) {
	accounts := twoAccounts()
	accounts = append(accounts, client.Account{ID: 3, AccountNumber: "A3", Balance: 10})

	for _, source := range accounts {
		candidates := DestinationCandidates(accounts, source.ID)

		require.Len(t, candidates, len(accounts)-1)
		for _, candidate := range candidates {
			require.NotEqual(t, source.ID, candidate.ID)
		}
	}
}
