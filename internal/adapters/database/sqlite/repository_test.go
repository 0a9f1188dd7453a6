package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/finanza-app/finanza-backend/internal/adapters/database/sqlite"
	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/finanza-app/finanza-backend/pkg/database"
)

// RepositoryTestSuite exercises the repositories against a real migrated
// sqlite file.
type RepositoryTestSuite struct {
	suite.Suite
	accountRepo *sqlite.AccountRepository
	txnRepo     *sqlite.TransactionRepository
	billRepo    *sqlite.BillRepository
	userRepo    *sqlite.UserRepository
	prefRepo    *sqlite.PreferenceRepository

	userID string
}

func (s *RepositoryTestSuite) SetupTest() {
	dbPath := filepath.Join(s.T().TempDir(), "test.db")
	require.NoError(s.T(), database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(s.T(), err)
	s.T().Cleanup(func() { db.Close() })

	s.accountRepo = sqlite.NewAccountRepository(db)
	s.txnRepo = sqlite.NewTransactionRepository(db)
	s.billRepo = sqlite.NewBillRepository(db)
	s.userRepo = sqlite.NewUserRepository(db)
	s.prefRepo = sqlite.NewPreferenceRepository(db)

	s.userID = uuid.NewString()
	now := time.Now().UTC()
	require.NoError(s.T(), s.userRepo.SaveUser(context.Background(), domain.User{
		UserID:       s.userID,
		Username:     "tester",
		Email:        "tester@example.com",
		PasswordHash: "x",
		IsVerified:   true,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}))
}

func (s *RepositoryTestSuite) newAccount(name string, createdAt time.Time) domain.Account {
	return domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      s.userID,
		Name:        name,
		AccountType: domain.Bank,
		Balance:     decimal.Zero,
		Color:       domain.DefaultAccountColor,
		AuditFields: domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}
}

func (s *RepositoryTestSuite) TestSaveUser_DuplicateUsername() {
	ctx := context.Background()
	now := time.Now().UTC()

	err := s.userRepo.SaveUser(ctx, domain.User{
		UserID:       uuid.NewString(),
		Username:     "tester",
		Email:        "other@example.com",
		PasswordHash: "y",
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestListAccounts_CreationOrder() {
	ctx := context.Background()
	base := time.Now().UTC()
	second := s.newAccount("Second", base.Add(time.Millisecond))
	first := s.newAccount("First", base)

	s.Require().NoError(s.accountRepo.SaveAccounts(ctx, []domain.Account{second, first}))

	accounts, err := s.accountRepo.ListAccounts(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("First", accounts[0].Name)
	s.Equal("Second", accounts[1].Name)
}

func (s *RepositoryTestSuite) TestSaveTransaction_UpdatesBalanceAtomically() {
	ctx := context.Background()
	account := s.newAccount("Bank Account", time.Now().UTC())
	s.Require().NoError(s.accountRepo.SaveAccount(ctx, account))

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          s.userID,
		AccountID:       account.AccountID,
		Amount:          decimal.NewFromInt(250),
		Category:        "salary",
		Description:     "Paycheck",
		TransactionType: domain.Income,
		TransactionDate: now,
		CreatedAt:       now,
	}

	s.Require().NoError(s.txnRepo.SaveTransaction(ctx, txn, txn.SignedAmount()))

	stored, err := s.accountRepo.FindAccountByID(ctx, s.userID, account.AccountID)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(decimal.NewFromInt(250)), "got %s", stored.Balance)

	transactions, err := s.txnRepo.ListTransactions(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.True(transactions[0].Amount.Equal(decimal.NewFromInt(250)))
}

func (s *RepositoryTestSuite) TestSaveTransaction_MissingAccountWritesNothing() {
	ctx := context.Background()
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          s.userID,
		AccountID:       uuid.NewString(),
		Amount:          decimal.NewFromInt(10),
		Category:        "food",
		Description:     "Ghost",
		TransactionType: domain.Expense,
		TransactionDate: now,
		CreatedAt:       now,
	}

	err := s.txnRepo.SaveTransaction(ctx, txn, txn.SignedAmount())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)

	transactions, listErr := s.txnRepo.ListTransactions(ctx, s.userID)
	s.Require().NoError(listErr)
	s.Empty(transactions)
}

func (s *RepositoryTestSuite) TestSettleBill_OnceOnly() {
	ctx := context.Background()
	account := s.newAccount("Bank Account", time.Now().UTC())
	s.Require().NoError(s.accountRepo.SaveAccount(ctx, account))

	now := time.Now().UTC()
	bill := domain.Bill{
		BillID:      uuid.NewString(),
		UserID:      s.userID,
		Name:        "Internet",
		Amount:      decimal.NewFromInt(600),
		DueDate:     now.AddDate(0, 0, 5),
		Category:    domain.DefaultBillCategory,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	s.Require().NoError(s.billRepo.SaveBill(ctx, bill))

	settlement := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          s.userID,
		AccountID:       account.AccountID,
		Amount:          bill.Amount,
		Category:        bill.Category,
		Description:     bill.SettlementDescription(),
		TransactionType: domain.Expense,
		TransactionDate: now,
		CreatedAt:       now,
	}

	s.Require().NoError(s.billRepo.SettleBill(ctx, bill, settlement, settlement.SignedAmount()))

	stored, err := s.billRepo.FindBillByID(ctx, s.userID, bill.BillID)
	s.Require().NoError(err)
	s.True(stored.IsPaid)

	account2, err := s.accountRepo.FindAccountByID(ctx, s.userID, account.AccountID)
	s.Require().NoError(err)
	s.True(account2.Balance.Equal(decimal.NewFromInt(-600)), "got %s", account2.Balance)

	// A second settlement attempt must hit the is_paid guard and change
	// nothing.
	again := settlement
	again.TransactionID = uuid.NewString()
	err = s.billRepo.SettleBill(ctx, bill, again, again.SignedAmount())
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)

	account3, err := s.accountRepo.FindAccountByID(ctx, s.userID, account.AccountID)
	s.Require().NoError(err)
	s.True(account3.Balance.Equal(decimal.NewFromInt(-600)))

	transactions, err := s.txnRepo.ListTransactions(ctx, s.userID)
	s.Require().NoError(err)
	s.Len(transactions, 1)
}

func (s *RepositoryTestSuite) TestSettleBill_MissingBill() {
	ctx := context.Background()
	account := s.newAccount("Bank Account", time.Now().UTC())
	s.Require().NoError(s.accountRepo.SaveAccount(ctx, account))

	now := time.Now().UTC()
	ghost := domain.Bill{BillID: uuid.NewString(), UserID: s.userID, Amount: decimal.NewFromInt(5)}
	settlement := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          s.userID,
		AccountID:       account.AccountID,
		Amount:          ghost.Amount,
		Category:        domain.DefaultBillCategory,
		Description:     "Ghost Payment",
		TransactionType: domain.Expense,
		TransactionDate: now,
		CreatedAt:       now,
	}

	err := s.billRepo.SettleBill(ctx, ghost, settlement, settlement.SignedAmount())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestDeleteBill() {
	ctx := context.Background()
	now := time.Now().UTC()
	bill := domain.Bill{
		BillID:      uuid.NewString(),
		UserID:      s.userID,
		Name:        "Water",
		Amount:      decimal.NewFromInt(80),
		DueDate:     now,
		Category:    domain.DefaultBillCategory,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	s.Require().NoError(s.billRepo.SaveBill(ctx, bill))

	s.Require().NoError(s.billRepo.DeleteBill(ctx, s.userID, bill.BillID))
	s.ErrorIs(s.billRepo.DeleteBill(ctx, s.userID, bill.BillID), apperrors.ErrNotFound)

	_, err := s.billRepo.FindBillByID(ctx, s.userID, bill.BillID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestPreferences_UpsertAndRead() {
	ctx := context.Background()

	prefs, err := s.prefRepo.GetPreferences(ctx, s.userID)
	s.Require().NoError(err)
	s.Empty(prefs)

	s.Require().NoError(s.prefRepo.SetPreference(ctx, s.userID, "currency", "USD"))
	s.Require().NoError(s.prefRepo.SetPreference(ctx, s.userID, "currency", "EUR"))
	s.Require().NoError(s.prefRepo.SetPreference(ctx, s.userID, "theme", "dark"))

	prefs, err = s.prefRepo.GetPreferences(ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("EUR", prefs["currency"])
	s.Equal("dark", prefs["theme"])
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
