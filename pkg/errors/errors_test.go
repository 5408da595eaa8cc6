package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if got := CodeOf(New(CodeValidation, "bad input")); got != CodeValidation {
		t.Fatalf("CodeOf = %q, want %q", got, CodeValidation)
	}
	if got := CodeOf(stdErrors.New("plain")); got != CodeInternal {
		t.Fatalf("CodeOf untyped = %q, want %q", got, CodeInternal)
	}
	if got := CodeOf(nil); got != CodeInternal {
		t.Fatalf("CodeOf nil = %q, want %q", got, CodeInternal)
	}
}

func TestCodeOfUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	inner := New(CodeBusiness, "request rejected")
	wrapped := fmt.Errorf("calling api: %w", inner)
	if got := CodeOf(wrapped); got != CodeBusiness {
		t.Fatalf("CodeOf = %q, want %q", got, CodeBusiness)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("connection reset")
	err := Wrap(CodeTransport, cause, "execute request")
	if !stdErrors.Is(err, cause) {
		t.Fatal("cause lost through Wrap")
	}
	if err.Code() != CodeTransport {
		t.Fatalf("Code = %q", err.Code())
	}
}

func TestUserMessageRespectsDetailsAllowed(t *testing.T) {
	t.Parallel()

	// Validation and business wording is rendered verbatim.
	validation := New(CodeValidation, "Minimum order amount not met for this voucher")
	if got := validation.UserMessage(); got != "Minimum order amount not met for this voucher" {
		t.Fatalf("UserMessage = %q", got)
	}

	// Internal details never leak; the generic public message shows.
	internal := New(CodeInternal, "pq: connection refused on orders insert")
	if got := internal.UserMessage(); got != "something went wrong" {
		t.Fatalf("UserMessage = %q", got)
	}

	transport := New(CodeTransport, "dial tcp 10.0.0.1: timeout")
	if got := transport.UserMessage(); got != "network error, please try again" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.PublicMessage != MetadataFor(CodeInternal).PublicMessage {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()

	err := New(CodeValidation, "bad fields").WithDetails(map[string]string{"field": "price"})
	details, ok := err.Details().(map[string]string)
	if !ok || details["field"] != "price" {
		t.Fatalf("Details = %v", err.Details())
	}
}

func TestRetryableMetadata(t *testing.T) {
	t.Parallel()

	if !MetadataFor(CodeTransport).Retryable {
		t.Fatal("transport errors should be marked retryable")
	}
	if MetadataFor(CodeBusiness).Retryable {
		t.Fatal("business rejections must not be retryable")
	}
}
