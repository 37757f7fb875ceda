package services

import "context"

// Notifier receives transient success and failure messages.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

type NopNotifier struct{}

func (NopNotifier) Success(context.Context, string) {}
func (NopNotifier) Error(context.Context, string) {}

// Messages shown to the user.
const (
	MsgSignupOK       = "Signup successful"
	MsgSignupFailed   = "Signup failed"
	MsgLoginOK        = "Login successful"
	MsgLoginFailed    = "Login failed"
	MsgBooksFailed    = "Failed to fetch books"
	MsgDetailFailed   = "Failed to fetch book details"
	MsgAddOK          = "Book added to cart"
	MsgAddFailed      = "Failed to add to cart"
	MsgUpdateOK       = "Cart updated"
	MsgUpdateFailed   = "Failed to update cart"
	MsgRemoveOK       = "Item removed from cart"
	MsgRemoveFailed   = "Failed to remove item"
	MsgCartLoadFailed = "Failed to fetch cart"
)
