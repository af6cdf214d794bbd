package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"

type CheckoutService interface {
	ProcessCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error)
}

type checkoutService struct {
	store     *repository.Store
	carts     CartService
	discounts DiscountService
	payments  PaymentProcessor
	// inFlight holds the userIDs with a checkout in progress.
	inFlight sync.Map
}

func NewCheckoutService(store *repository.Store, carts CartService, discounts DiscountService, payments PaymentProcessor) CheckoutService {
	return &checkoutService{store: store, carts: carts, discounts: discounts, payments: payments}
}

func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), utils.RandomString(utils.UpperAlphanumeric, 9))
}

func startStep(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}

func endStep(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.CodeOf(err))
	}
	span.End()
}

// ProcessCheckout turns the user's cart into an order. Every check and the
// payment happen before the ledger is written, so a failure at any step
// leaves no order behind and the cart untouched. A user has at most one
// checkout in progress.
func (s *checkoutService) ProcessCheckout(ctx context.Context, req *models.CheckoutRequest) (result *models.CheckoutResult, err error) {
	ctx, span := startStep(ctx, "checkout.process")
	defer func() {
		outcome := metrics.CheckoutResultSuccess
		if err != nil {
			outcome = errors.CodeOf(err)
		}
		metrics.RecordCheckout(outcome)
		endStep(span, err)
	}()
	defer recoverInternal("Failed to process checkout", &result, &err)

	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	userID := req.UserID
	discountCode := req.DiscountCode
	logger := middleware.LoggerFromContext(ctx).With(slog.String("userId", userID))

	if _, busy := s.inFlight.LoadOrStore(userID, struct{}{}); busy {
		logger.Warn("Rejected concurrent checkout")
		return nil, errors.InvalidRequestError("A checkout is already in progress for this user")
	}
	defer s.inFlight.Delete(userID)
	span.SetAttributes(
		attribute.String("checkout.user_id", userID),
		attribute.String("checkout.payment_method", string(req.PaymentMethod.Type)),
	)

	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	discountAmount, err := s.priceDiscount(ctx, cart.Total, discountCode)
	if err != nil {
		return nil, err
	}
	finalTotal := cart.Total - discountAmount

	payment, err := s.pay(ctx, finalTotal, *req.PaymentMethod)
	if err != nil {
		logger.Warn("Checkout payment failed", slog.Int64("amount", finalTotal))
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		ID:            newOrderID(now),
		UserID:        userID,
		Items:         slices.Clone(cart.Items),
		Total:         finalTotal,
		Status:        models.OrderStatusProcessing,
		PaymentMethod: *req.PaymentMethod,
		TransactionID: payment.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if discountCode != "" {
		order.DiscountCode = discountCode
		order.DiscountAmount = discountAmount
	}

	generated, err := s.commit(ctx, order)
	if err != nil {
		logger.Error("Payment captured but order was not committed",
			slog.String("transactionId", payment.TransactionID),
			slog.String("error", err.Error()))
		return nil, err
	}

	result = &models.CheckoutResult{
		OrderID:        order.ID,
		Total:          order.Total,
		DiscountAmount: order.DiscountAmount,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
	}
	if generated != nil {
		result.GeneratedDiscountCode = generated.Code
	}

	span.SetAttributes(attribute.String("checkout.order_id", order.ID))
	logger.Info("Checkout completed",
		slog.String("orderId", order.ID),
		slog.Int64("total", order.Total),
		slog.Int64("discountAmount", order.DiscountAmount),
		slog.Bool("discountGenerated", generated != nil))

	return result, nil
}

func validateCheckoutRequest(req *models.CheckoutRequest) error {
	if req == nil {
		return errors.InvalidRequestError("Request body is required")
	}

	if strings.TrimSpace(req.UserID) == "" {
		return errors.InvalidRequestError("Invalid userId")
	}

	if req.PaymentMethod == nil {
		return errors.InvalidRequestError("Payment method is required")
	}

	if !req.PaymentMethod.Type.Valid() {
		return errors.InvalidRequestError("Invalid payment method type. Must be one of: card, paypal, apple_pay")
	}

	return nil
}

// loadCart returns the cart with fresh totals after checking that it is
// non-empty and that every line still resolves in the catalog.
func (s *checkoutService) loadCart(ctx context.Context, userID string) (cart *models.Cart, err error) {
	ctx, span := startStep(ctx, "checkout.load_cart")
	defer func() { endStep(span, err) }()

	cart, err = s.carts.GetExistingCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, errors.InvalidRequestError("Cannot checkout with an empty cart")
	}

	for _, item := range cart.Items {
		if _, err := s.store.Products.GetProductByID(ctx, item.ProductID); err != nil {
			return nil, errors.ProductNotFoundError(fmt.Sprintf("Product %s no longer exists", item.ProductID)).WithError(err)
		}
	}

	span.SetAttributes(attribute.Int64("cart.total", cart.Total), attribute.Int("cart.item_count", cart.ItemCount))

	return cart, nil
}

func (s *checkoutService) priceDiscount(ctx context.Context, total int64, code string) (amount int64, err error) {
	if code == "" {
		return 0, nil
	}

	ctx, span := startStep(ctx, "checkout.apply_discount")
	defer func() { endStep(span, err) }()

	discount, err := s.discounts.Validate(ctx, code)
	if err != nil {
		return 0, err
	}

	return percentageOf(total, discount.Percentage), nil
}

func (s *checkoutService) pay(ctx context.Context, amount int64, method models.PaymentMethod) (result *models.PaymentResult, err error) {
	ctx, span := startStep(ctx, "checkout.payment")
	defer func() { endStep(span, err) }()

	result, err = s.payments.ProcessPayment(ctx, amount, method)
	if err != nil {
		return nil, errors.CheckoutFailedError("Payment processing failed").WithError(err)
	}

	if result == nil || !result.Success {
		return nil, errors.CheckoutFailedError("Payment processing failed")
	}

	return result, nil
}

// commit is the only durable write of a checkout. The discount is checked
// again under the commit lock because another checkout may have redeemed it
// while this one was paying. The paid lines are then taken out of the cart;
// lines added during payment stay for a later checkout. The returned discount
// is non-nil only when this order crossed an Nth-order threshold.
func (s *checkoutService) commit(ctx context.Context, order *models.Order) (generated *models.Discount, err error) {
	ctx, span := startStep(ctx, "checkout.commit")
	defer func() { endStep(span, err) }()

	err = s.store.Atomically(func() error {
		if order.DiscountCode != "" {
			if _, err := s.discounts.Validate(ctx, order.DiscountCode); err != nil {
				return err
			}
		}

		if _, err := s.store.Orders.GetOrderByID(ctx, order.ID); err == nil {
			return errors.InternalError("Failed to store order").WithDetail("duplicate order id")
		}

		if _, err := s.carts.ConsumeItems(ctx, order.UserID, order.Items); err != nil {
			return err
		}

		if err := s.store.Orders.StoreOrder(ctx, order); err != nil {
			return errors.InternalError("Failed to store order").WithError(err)
		}
		metrics.RecordOrderStored()

		if order.DiscountCode != "" {
			s.discounts.MarkUsed(ctx)
		}

		count := s.store.Orders.Size(ctx)
		if !s.discounts.Eligible(count) {
			return nil
		}

		discount, err := s.discounts.GenerateIfEligible(ctx, count)
		if err != nil {
			// The order is already paid and stored; losing the promotion is
			// preferable to failing the checkout.
			middleware.LoggerFromContext(ctx).Error("Failed to generate discount code",
				slog.Int("orderCount", count),
				slog.String("error", err.Error()))
			return nil
		}

		if discount != nil && !discount.IsUsed {
			generated = discount
		}

		return nil
	})

	return generated, err
}
