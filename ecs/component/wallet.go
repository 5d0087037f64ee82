package component

import "github.com/milk9111/skybrawl/observer"

// Wallet counts collected coins.
type Wallet struct {
	coins   int
	changed *observer.Subject[int]
}

var WalletComponent = NewComponent[Wallet]()

func NewWallet() *Wallet {
	return &Wallet{changed: observer.NewSubject(0)}
}

func (w *Wallet) Coins() int {
	if w == nil {
		return 0
	}
	return w.coins
}

// Add credits amount. Non-positive amounts are ignored.
func (w *Wallet) Add(amount int) bool {
	if w == nil || amount <= 0 {
		return false
	}
	w.coins += amount
	w.publish()
	return true
}

// Spend debits amount if the balance covers it.
func (w *Wallet) Spend(amount int) bool {
	if w == nil || amount <= 0 || w.coins < amount {
		return false
	}
	w.coins -= amount
	w.publish()
	return true
}

func (w *Wallet) Reset() {
	if w == nil {
		return
	}
	w.coins = 0
	w.publish()
}

// OnChanged subscribes fn to the coin total; fn receives the current total
// immediately.
func (w *Wallet) OnChanged(fn func(total int)) (unsubscribe func()) {
	if w == nil {
		return func() {}
	}
	if w.changed == nil {
		w.changed = observer.NewSubject(w.coins)
	}
	return w.changed.Subscribe(fn)
}

func (w *Wallet) publish() {
	if w.changed == nil {
		w.changed = observer.NewSubject(w.coins)
		return
	}
	w.changed.Publish(w.coins)
}
