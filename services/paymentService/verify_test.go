package paymentService

import (
	"context"
	"testing"

	"studynotion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownSignature = "c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f"

func TestSignature(t *testing.T) {
	assert.Equal(t, knownSignature, Signature("s3cr3t", "order_1", "pay_1"))

	assert.True(t, VerifySignature("s3cr3t", "order_1", "pay_1", knownSignature))
	assert.False(t, VerifySignature("s3cr3t", "order_1", "pay_2", knownSignature))
	assert.False(t, VerifySignature("other", "order_1", "pay_1", knownSignature))
	assert.False(t, VerifySignature("s3cr3t", "order_1", "pay_1", ""))
	assert.False(t, VerifySignature("s3cr3t", "order_1", "pay_1", knownSignature[:63]))
}

func TestVerifySignatureRejectsBitFlips(t *testing.T) {
	sig := []byte(knownSignature)
	for i := range sig {
		for bit := 0; bit < 8; bit++ {
			flipped := make([]byte, len(sig))
			copy(flipped, sig)
			flipped[i] ^= 1 << bit
			if VerifySignature("s3cr3t", "order_1", "pay_1", string(flipped)) {
				t.Fatalf("flipped bit %d of byte %d still verified", bit, i)
			}
		}
	}
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("genuine callback enrolls and marks the order paid", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.createUser(t, "Asha", "Rao", "asha@example.com")
		c1 := env.createCourse(t, "Go Basics", "499.00")

		_, err := env.svc.CreateOrder(ctx, user.ID, []uint{c1.ID})
		require.NoError(t, err)

		outcomes, err := env.svc.VerifyPayment(ctx, VerifyRequest{
			OrderID:   "order_1",
			PaymentID: "pay_1",
			Signature: knownSignature,
			CourseIDs: []uint{c1.ID},
			UserID:    user.ID,
		})
		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.NoError(t, outcomes[0].Err)
		assert.Equal(t, int64(1), env.progressCount(t, user.ID, c1.ID))

		var txn models.PaymentTransaction
		require.NoError(t, env.db.Where("payment_order_id = ?", "order_1").First(&txn).Error)
		assert.Equal(t, models.PaymentStatusPaid, txn.Status)
		assert.Equal(t, "pay_1", txn.PaymentID)
		require.NotNil(t, txn.PaidAt)
	})

	t.Run("forged callback has no side effects", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.createUser(t, "Asha", "Rao", "asha@example.com")
		c1 := env.createCourse(t, "Go Basics", "499.00")

		_, err := env.svc.VerifyPayment(ctx, VerifyRequest{
			OrderID:   "order_1",
			PaymentID: "pay_2",
			Signature: knownSignature,
			CourseIDs: []uint{c1.ID},
			UserID:    user.ID,
		})
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Equal(t, "Payment Failed", Message(err, ""))

		assert.Zero(t, env.progressCount(t, user.ID, c1.ID))
		assert.Empty(t, env.notifier.Sent)

		var count int64
		env.db.Model(&models.PaymentTransaction{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.svc.VerifyPayment(ctx, VerifyRequest{OrderID: "order_1", PaymentID: "pay_1", UserID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, "Payment Failed", Message(err, ""))
	})

	t.Run("order raised elsewhere is still recorded", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.createUser(t, "Asha", "Rao", "asha@example.com")
		c1 := env.createCourse(t, "Go Basics", "499.00")

		_, err := env.svc.VerifyPayment(ctx, VerifyRequest{
			OrderID:   "order_1",
			PaymentID: "pay_1",
			Signature: knownSignature,
			CourseIDs: []uint{c1.ID},
			UserID:    user.ID,
		})
		require.NoError(t, err)

		var txn models.PaymentTransaction
		require.NoError(t, env.db.Where("payment_order_id = ?", "order_1").First(&txn).Error)
		assert.Equal(t, models.PaymentStatusPaid, txn.Status)
		assert.Equal(t, "INR", txn.Currency)
	})
}
