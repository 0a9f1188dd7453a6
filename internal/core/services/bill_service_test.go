package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finanza-app/finanza-backend/internal/apperrors"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	"github.com/finanza-app/finanza-backend/internal/core/services"
	"github.com/finanza-app/finanza-backend/internal/dto"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo    *MockBillRepository
	mockAccountRepo *MockAccountRepository
	service         *services.BillService
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, suite.mockAccountRepo, fixedRates{table: domain.DefaultRateTable()})
}

func (suite *BillServiceTestSuite) TestCreateBill_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateBillRequest{
		Name:    "Internet",
		Amount:  decimal.NewFromInt(600),
		DueDate: time.Now().AddDate(0, 0, 10),
	}

	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill")).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, userID, req, domain.BaseCurrency)

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	suite.NotEmpty(bill.BillID)
	suite.Equal("Internet", bill.Name)
	suite.Equal(domain.DefaultBillCategory, bill.Category)
	suite.False(bill.IsPaid)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBillRequest{Name: "Zero", Amount: decimal.Zero, DueDate: time.Now()}

	_, err := suite.service.CreateBill(ctx, uuid.NewString(), req, domain.BaseCurrency)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill")
}

func (suite *BillServiceTestSuite) TestPayBill_SettlesAgainstNamedAccount() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	bill := &domain.Bill{
		BillID:   uuid.NewString(),
		UserID:   userID,
		Name:     "Electricity",
		Amount:   decimal.NewFromInt(450),
		DueDate:  time.Now(),
		Category: "bills",
	}
	account := &domain.Account{AccountID: accountID, UserID: userID, Name: "Bank Account"}

	suite.mockBillRepo.On("FindBillByID", ctx, userID, bill.BillID).Return(bill, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).Return(account, nil).Once()

	var gotSettlement domain.Transaction
	var gotDelta decimal.Decimal
	suite.mockBillRepo.On("SettleBill", ctx, mock.AnythingOfType("domain.Bill"), mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("decimal.Decimal")).
		Run(func(args mock.Arguments) {
			gotSettlement = args.Get(2).(domain.Transaction)
			gotDelta = args.Get(3).(decimal.Decimal)
		}).Return(nil).Once()

	paid, settlement, err := suite.service.PayBill(ctx, userID, bill.BillID, accountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(paid)
	suite.Require().NotNil(settlement)
	suite.True(paid.IsPaid)
	suite.Equal("Electricity Payment", gotSettlement.Description)
	suite.Equal(domain.Expense, gotSettlement.TransactionType)
	suite.Equal(accountID, gotSettlement.AccountID)
	suite.True(gotSettlement.Amount.Equal(bill.Amount))
	suite.True(gotDelta.Equal(decimal.NewFromInt(-450)), "settlement delta should debit the account, got %s", gotDelta)
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_DefaultsToEarliestAccount() {
	ctx := context.Background()
	userID := uuid.NewString()
	bill := &domain.Bill{
		BillID: uuid.NewString(),
		UserID: userID,
		Name:   "Rent",
		Amount: decimal.NewFromInt(9000),
	}
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: userID, Name: "Bank Account"},
		{AccountID: uuid.NewString(), UserID: userID, Name: "Cash"},
	}

	suite.mockBillRepo.On("FindBillByID", ctx, userID, bill.BillID).Return(bill, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, userID).Return(accounts, nil).Once()

	var gotSettlement domain.Transaction
	suite.mockBillRepo.On("SettleBill", ctx, mock.AnythingOfType("domain.Bill"), mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("decimal.Decimal")).
		Run(func(args mock.Arguments) {
			gotSettlement = args.Get(2).(domain.Transaction)
		}).Return(nil).Once()

	_, _, err := suite.service.PayBill(ctx, userID, bill.BillID, "")

	suite.Require().NoError(err)
	suite.Equal(accounts[0].AccountID, gotSettlement.AccountID)
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_NoAccountsLeavesBillUnpaid() {
	ctx := context.Background()
	userID := uuid.NewString()
	bill := &domain.Bill{BillID: uuid.NewString(), UserID: userID, Name: "Water", Amount: decimal.NewFromInt(100)}

	suite.mockBillRepo.On("FindBillByID", ctx, userID, bill.BillID).Return(bill, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, userID).Return([]domain.Account{}, nil).Once()

	paid, settlement, err := suite.service.PayBill(ctx, userID, bill.BillID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(paid)
	suite.Nil(settlement)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SettleBill")
}

func (suite *BillServiceTestSuite) TestPayBill_AlreadyPaidIsConflict() {
	ctx := context.Background()
	userID := uuid.NewString()
	bill := &domain.Bill{BillID: uuid.NewString(), UserID: userID, Name: "Paid", Amount: decimal.NewFromInt(50), IsPaid: true}

	suite.mockBillRepo.On("FindBillByID", ctx, userID, bill.BillID).Return(bill, nil).Once()

	paid, settlement, err := suite.service.PayBill(ctx, userID, bill.BillID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(paid)
	suite.Nil(settlement)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SettleBill")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *BillServiceTestSuite) TestPayBill_StoreConflictSurfaces() {
	ctx := context.Background()
	userID := uuid.NewString()
	bill := &domain.Bill{BillID: uuid.NewString(), UserID: userID, Name: "Raced", Amount: decimal.NewFromInt(75)}
	account := &domain.Account{AccountID: uuid.NewString(), UserID: userID}

	suite.mockBillRepo.On("FindBillByID", ctx, userID, bill.BillID).Return(bill, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, account.AccountID).Return(account, nil).Once()
	suite.mockBillRepo.On("SettleBill", ctx, mock.AnythingOfType("domain.Bill"), mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("decimal.Decimal")).
		Return(apperrors.ErrConflict).Once()

	_, _, err := suite.service.PayBill(ctx, userID, bill.BillID, account.AccountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestPayBill_MissingBill() {
	ctx := context.Background()
	userID := uuid.NewString()
	billID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, userID, billID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.PayBill(ctx, userID, billID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestDeleteBill_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	billID := uuid.NewString()

	suite.mockBillRepo.On("DeleteBill", ctx, userID, billID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBill(ctx, userID, billID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
