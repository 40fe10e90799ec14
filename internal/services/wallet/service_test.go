package wallet_test

import (
	"bytes"
	"errors"
	"testing"

	"ducat/internal/crypto"
	"ducat/internal/domain"
	"ducat/internal/services/wallet"
	"ducat/internal/store"
)

const pass = "Correct-Horse-9battery"

func newService(t *testing.T) *wallet.Service {
	t.Helper()
	return wallet.New(store.NewKeypairFileStore(t.TempDir()))
}

func TestWallet_CreateSignVerify(t *testing.T) {
	svc := newService(t)

	rec, err := svc.Create(pass, false)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	if rec.PublicKey == (domain.PublicKey{}) {
		t.Fatal("created wallet has a zero public key")
	}

	msg := []byte("transfer 10 ducats to alice")
	sig, err := svc.Sign(pass, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := svc.Verify(rec.PublicKey.Slice(), msg, sig.Slice()); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestWallet_Verify_TamperedMessage(t *testing.T) {
	svc := newService(t)
	rec, err := svc.Create(pass, false)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	sig, err := svc.Sign(pass, []byte("transfer 10 ducats to alice"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	err = svc.Verify(rec.PublicKey.Slice(), []byte("transfer 11 ducats to alice"), sig.Slice())
	if !errors.Is(err, crypto.ErrVerificationFailed) {
		t.Fatalf("got %v, want ErrVerificationFailed", err)
	}
}

func TestWallet_Create_WeakPassphrase(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Create("short", false); !errors.Is(err, wallet.ErrWeakPassphrase) {
		t.Fatalf("got %v, want ErrWeakPassphrase", err)
	}
}

func TestWallet_Create_Existing(t *testing.T) {
	svc := newService(t)

	first, err := svc.Create(pass, false)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	if _, err := svc.Create(pass, false); !errors.Is(err, wallet.ErrWalletExists) {
		t.Fatalf("got %v, want ErrWalletExists", err)
	}

	second, err := svc.Create(pass, true)
	if err != nil {
		t.Fatalf("create with force: %v", err)
	}
	if second.PublicKey == first.PublicKey {
		t.Fatal("force create did not rotate the keypair")
	}
}

func TestWallet_Create_StoreStampsChecksum(t *testing.T) {
	st := store.NewKeypairFileStore(t.TempDir())
	svc := wallet.New(st)

	rec, err := svc.Create(pass, false)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	if rec.Checksum != "" {
		t.Fatalf("returned record carries checksum %q before any write", rec.Checksum)
	}

	loaded, ok, err := st.LoadKeypair()
	if err != nil {
		t.Fatalf("load keypair: %v", err)
	}
	if !ok {
		t.Fatal("create did not persist a record")
	}
	if loaded.Checksum == "" {
		t.Fatal("persisted record is missing its checksum")
	}
	if !bytes.Equal(loaded.Sealed, rec.Sealed) {
		t.Fatal("persisted sealed bytes differ from the returned record")
	}
}

func TestWallet_Sign_NoWallet(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Sign(pass, []byte("hi")); !errors.Is(err, wallet.ErrNoWallet) {
		t.Fatalf("got %v, want ErrNoWallet", err)
	}
}

func TestWallet_Sign_WrongPassphrase(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Create(pass, false); err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	if _, err := svc.Sign("Wrong-Horse-9battery", []byte("hi")); !errors.Is(err, crypto.ErrWrongPassphrase) {
		t.Fatalf("got %v, want ErrWrongPassphrase", err)
	}
}

func TestWallet_PublicMaterial_NoPassphrase(t *testing.T) {
	svc := newService(t)
	rec, err := svc.Create(pass, false)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}

	pub, err := svc.PublicKey()
	if err != nil {
		t.Fatalf("public key: %v", err)
	}
	if pub != rec.PublicKey {
		t.Fatal("stored public key does not match created record")
	}
	fp, err := svc.Fingerprint()
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if fp != rec.Fingerprint {
		t.Fatal("stored fingerprint does not match created record")
	}
}
