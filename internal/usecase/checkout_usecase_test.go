package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	carts      repo.CartRepository
	cartItems  repo.CartItemRepository
	products   repo.ProductRepository
	histories  repo.HistoryRepository
	auditLogs  repo.AuditLogRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Carts() repo.CartRepository           { return r.carts }
func (r *TxReposMock) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *TxReposMock) Products() repo.ProductRepository     { return r.products }
func (r *TxReposMock) Histories() repo.HistoryRepository    { return r.histories }
func (r *TxReposMock) AuditLogs() repo.AuditLogRepository   { return r.auditLogs }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateShippingStatus(ctx context.Context, orderID int64, status model.ShippingStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, userID, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserIDForUpdate(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64, variant string) error {
	args := m.Called(ctx, cartID, productID, addQty, variant)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error) {
	args := m.Called(ctx, cartItemID, userID)
	return args.Bool(0), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in these tests")
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in these tests")
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in these tests")
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in these tests")
}

type HistoryRepoMock struct{ mock.Mock }

func (m *HistoryRepoMock) Create(ctx context.Context, h model.History) (int64, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HistoryRepoMock) CreateItemsBulk(ctx context.Context, historyID int64, items []model.HistoryItem) error {
	args := m.Called(ctx, historyID, items)
	return args.Error(0)
}

func (m *HistoryRepoMock) ListAll(ctx context.Context, page int, limit int) ([]model.History, int64, error) {
	args := m.Called(ctx, page, limit)
	hs, _ := args.Get(0).([]model.History)
	return hs, args.Get(1).(int64), args.Error(2)
}

func (m *HistoryRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.History, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	hs, _ := args.Get(0).([]model.History)
	return hs, args.Get(1).(int64), args.Error(2)
}

func (m *HistoryRepoMock) ListItemsByHistoryID(ctx context.Context, historyID int64) ([]model.HistoryItem, error) {
	args := m.Called(ctx, historyID)
	items, _ := args.Get(0).([]model.HistoryItem)
	return items, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

// 常に通すvalidator
type okValidator struct{}

func (okValidator) ValidateRecipient(recipientName string, address string, contactNumber string) error {
	return nil
}

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func validCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		RecipientName:  "山田 太郎",
		Address:        "東京都千代田区1-1",
		ContactNumber:  "090-1234-5678",
		IdempotencyKey: "key-1",
	}
}

// =====================
// Checkout tests
// =====================

func TestCheckoutUsecase_Checkout_MissingIdempotencyKey(t *testing.T) {
	tx := new(TxManagerMock)
	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	in := validCheckoutInput()
	in.IdempotencyKey = ""

	_, err := uc.Checkout(context.Background(), 1, in)
	assertErrContains(t, err, "invalid idempotency_key")

	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestCheckoutUsecase_Checkout_EmptyCart_NoOrderCreated(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	cartsRepo := new(CartRepoMock)
	cartItemsRepo := new(CartItemRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, carts: cartsRepo, cartItems: cartItemsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	userID := int64(1)

	ordersRepo.On("FindByIdempotencyKey", mock.Anything, userID, "key-1").Return(model.Order{}, false, nil)
	cartsRepo.On("FindByUserIDForUpdate", mock.Anything, userID).Return(model.Cart{ID: 5, UserID: userID}, nil)
	cartItemsRepo.On("ListByCartID", mock.Anything, int64(5)).Return([]model.CartItem{}, nil)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	_, err := uc.Checkout(ctx, userID, validCheckoutInput())
	assertErrContains(t, err, "cart empty")

	// 失敗時は注文を作らない
	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartsRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_Checkout_NoCartRow_IsEmptyCart(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	cartsRepo := new(CartRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, carts: cartsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").Return(model.Order{}, false, nil)
	cartsRepo.On("FindByUserIDForUpdate", mock.Anything, int64(1)).Return(model.Cart{}, repo.ErrNotFound)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	_, err := uc.Checkout(ctx, 1, validCheckoutInput())
	assertErrContains(t, err, "cart empty")
}

func TestCheckoutUsecase_Checkout_Success_SnapshotAndClear(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)
	cartsRepo := new(CartRepoMock)
	cartItemsRepo := new(CartItemRepoMock)
	productsRepo := new(ProductRepoMock)

	tx.Repos = &TxReposMock{
		orders:     ordersRepo,
		orderItems: itemsRepo,
		carts:      cartsRepo,
		cartItems:  cartItemsRepo,
		products:   productsRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	userID := int64(7)
	cartID := int64(3)

	ordersRepo.On("FindByIdempotencyKey", mock.Anything, userID, "key-1").Return(model.Order{}, false, nil)
	cartsRepo.On("FindByUserIDForUpdate", mock.Anything, userID).Return(model.Cart{ID: cartID, UserID: userID}, nil)
	cartItemsRepo.On("ListByCartID", mock.Anything, cartID).Return([]model.CartItem{
		{ID: 1, CartID: cartID, ProductID: 100, Quantity: 2, Variant: "red"},
		{ID: 2, CartID: cartID, ProductID: 101, Quantity: 1},
	}, nil)

	productsRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Title: "マグカップ", IsActive: true}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, Title: "Tシャツ", IsActive: true}, nil)

	ordersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == userID &&
			o.ShippingStatus == model.ShippingStatusPending &&
			o.IdempotencyKey == "key-1"
	})).Return(int64(55), nil)

	itemsRepo.On("CreateBulk", mock.Anything, int64(55), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 2 &&
			items[0].TitleSnapshot == "マグカップ" &&
			items[0].Variant == "red" &&
			items[1].TitleSnapshot == "Tシャツ"
	})).Return(nil)

	cartsRepo.On("Clear", mock.Anything, cartID).Return(nil)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	out, err := uc.Checkout(ctx, userID, validCheckoutInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.ID)
	assert.Equal(t, string(model.ShippingStatusPending), out.ShippingStatus)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, "マグカップ", out.Items[0].Title)

	tx.AssertExpectations(t)
	ordersRepo.AssertExpectations(t)
	itemsRepo.AssertExpectations(t)
	cartsRepo.AssertExpectations(t)
}

func TestCheckoutUsecase_Checkout_MissingProduct_AbortsWhole(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	cartsRepo := new(CartRepoMock)
	cartItemsRepo := new(CartItemRepoMock)
	productsRepo := new(ProductRepoMock)

	tx.Repos = &TxReposMock{
		orders:    ordersRepo,
		carts:     cartsRepo,
		cartItems: cartItemsRepo,
		products:  productsRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	userID := int64(7)
	cartID := int64(3)

	ordersRepo.On("FindByIdempotencyKey", mock.Anything, userID, "key-1").Return(model.Order{}, false, nil)
	cartsRepo.On("FindByUserIDForUpdate", mock.Anything, userID).Return(model.Cart{ID: cartID}, nil)
	cartItemsRepo.On("ListByCartID", mock.Anything, cartID).Return([]model.CartItem{
		{ID: 1, CartID: cartID, ProductID: 100, Quantity: 1},
		{ID: 2, CartID: cartID, ProductID: 999, Quantity: 1},
	}, nil)

	productsRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Title: "マグカップ", IsActive: true}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	_, err := uc.Checkout(ctx, userID, validCheckoutInput())

	// 内部事情は漏らさない
	assertErrContains(t, err, "checkout failed")

	// 部分注文もカートのクリアもしない
	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartsRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_Checkout_IdempotentReplay(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)
	cartsRepo := new(CartRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, orderItems: itemsRepo, carts: cartsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	userID := int64(7)

	existing := model.Order{
		ID:             55,
		UserID:         userID,
		ShippingStatus: model.ShippingStatusPending,
		IdempotencyKey: "key-1",
	}

	ordersRepo.On("FindByIdempotencyKey", mock.Anything, userID, "key-1").Return(existing, true, nil)
	itemsRepo.On("ListByOrderID", mock.Anything, int64(55)).Return([]model.OrderItem{
		{ID: 1, OrderID: 55, ProductID: 100, TitleSnapshot: "マグカップ", Quantity: 2},
	}, nil)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	out, err := uc.Checkout(ctx, userID, validCheckoutInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.ID)

	// 2回目は新しい注文を作らず、カートにも触らない
	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartsRepo.AssertNotCalled(t, "FindByUserIDForUpdate", mock.Anything, mock.Anything)
}

// キーのスコープはユーザー単位。別ユーザーが同じキーを使っても
// それぞれ独立にチェックアウトできる。
func TestCheckoutUsecase_Checkout_SameKeyDifferentUsers_BothSucceed(t *testing.T) {
	ctx := context.Background()

	for _, userID := range []int64{1, 2} {
		tx := new(TxManagerMock)
		ordersRepo := new(OrderRepoMock)
		itemsRepo := new(OrderItemRepoMock)
		cartsRepo := new(CartRepoMock)
		cartItemsRepo := new(CartItemRepoMock)
		productsRepo := new(ProductRepoMock)

		tx.Repos = &TxReposMock{
			orders:     ordersRepo,
			orderItems: itemsRepo,
			carts:      cartsRepo,
			cartItems:  cartItemsRepo,
			products:   productsRepo,
		}
		tx.On("WithinTx", mock.Anything).Return(nil)

		cartID := userID * 10

		// 検索はユーザーでスコープされるので、他ユーザーの同キー注文は見えない
		ordersRepo.On("FindByIdempotencyKey", mock.Anything, userID, "key-1").Return(model.Order{}, false, nil)
		cartsRepo.On("FindByUserIDForUpdate", mock.Anything, userID).Return(model.Cart{ID: cartID, UserID: userID}, nil)
		cartItemsRepo.On("ListByCartID", mock.Anything, cartID).Return([]model.CartItem{
			{ID: 1, CartID: cartID, ProductID: 100, Quantity: 1},
		}, nil)
		productsRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Title: "マグカップ", IsActive: true}, nil)
		ordersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
			return o.UserID == userID && o.IdempotencyKey == "key-1"
		})).Return(userID+100, nil)
		itemsRepo.On("CreateBulk", mock.Anything, userID+100, mock.Anything).Return(nil)
		cartsRepo.On("Clear", mock.Anything, cartID).Return(nil)

		uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

		out, err := uc.Checkout(ctx, userID, validCheckoutInput())
		assert.NoError(t, err, "user %d", userID)
		assert.Equal(t, userID+100, out.ID)

		ordersRepo.AssertExpectations(t)
	}
}

func TestCheckoutUsecase_ListMyHistory_ReturnsOwnOnly(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	historiesRepo := new(HistoryRepoMock)

	tx.Repos = &TxReposMock{histories: historiesRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	// ページングはそのままrepoへ渡す
	historiesRepo.On("ListByUserID", mock.Anything, int64(7), 2, 10).Return([]model.History{
		{ID: 200, OrderID: 55, UserID: 7, CompletionStatus: model.CompletionStatusCompleted},
	}, int64(11), nil)
	historiesRepo.On("ListItemsByHistoryID", mock.Anything, int64(200)).Return([]model.HistoryItem{
		{ID: 1, HistoryID: 200, ProductID: 100, TitleSnapshot: "マグカップ", Quantity: 2},
	}, nil)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	outs, err := uc.ListMyHistory(ctx, 7, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(outs))
	assert.Equal(t, "マグカップ", outs[0].Items[0].Title)

	historiesRepo.AssertExpectations(t)
}

func TestCheckoutUsecase_ListMyOrders_PassesPaging(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, orderItems: itemsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	// 2ページ目が取れる（51件目以降も到達可能）
	ordersRepo.On("ListByUserID", mock.Anything, int64(7), 2, 50).Return([]model.Order{
		{ID: 51, UserID: 7, ShippingStatus: model.ShippingStatusPending},
	}, int64(51), nil)
	itemsRepo.On("ListByOrderID", mock.Anything, int64(51)).Return([]model.OrderItem{}, nil)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	outs, err := uc.ListMyOrders(ctx, 7, 2, 50)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(outs))
	assert.Equal(t, int64(51), outs[0].ID)

	ordersRepo.AssertExpectations(t)
}

func TestCheckoutUsecase_ListMyOrders_InvalidPaging(t *testing.T) {
	tx := new(TxManagerMock)
	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	_, err := uc.ListMyOrders(context.Background(), 7, 0, 50)
	assertErrContains(t, err, "invalid page")

	_, err = uc.ListMyOrders(context.Background(), 7, 1, 0)
	assertErrContains(t, err, "invalid limit")

	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

// =====================
// GetMyOrderDetail tests
// =====================

func TestCheckoutUsecase_GetMyOrderDetail_OtherUsersOrder_NotFound(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(55)).Return(model.Order{ID: 55, UserID: 999}, nil)

	uc := usecase.NewCheckoutUsecase(tx, usecase.NewSnapshotResolver(), okValidator{})

	_, err := uc.GetMyOrderDetail(ctx, 7, 55)
	assertErrContains(t, err, "not found")
}
