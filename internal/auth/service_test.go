package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.byEmail["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterStartsOnboardingPending(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	user, err := service.Register("Test User", "new@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.OnboardingStatus != OnboardingPending {
		t.Errorf("onboarding status = %q, want %q", user.OnboardingStatus, OnboardingPending)
	}
}

func TestEmailIsNormalized(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "  Mixed@Example.COM ", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login("mixed@example.com", "Password@123"); err != nil {
		t.Errorf("login with normalized email failed: %v", err)
	}
	if _, err := service.Register("Other", "MIXED@example.com", "Password@123"); err == nil {
		t.Error("expected duplicate error for case-variant email")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("A", "dup@example.com", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("B", "dup@example.com", "secret123"); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("", "a@b.com", "pw"); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "login@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login("login@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "login@example.com" {
		t.Errorf("wrong user returned: %s", user.Email)
	}

	if _, err := service.Login("login@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
