package entities

import (
	"errors"
	"testing"
)

func TestReviewStatus_Transitions(t *testing.T) {
	if !ReviewStatusPending.CanTransitionTo(ReviewStatusInReview) {
		t.Fatalf("pending -> in_review must be allowed")
	}
	if !ReviewStatusInReview.CanTransitionTo(ReviewStatusPending) {
		t.Fatalf("in_review -> pending (release) must be allowed")
	}
	for _, terminal := range []ReviewStatus{ReviewStatusApproved, ReviewStatusRejected, ReviewStatusEscalated} {
		if !ReviewStatusInReview.CanTransitionTo(terminal) {
			t.Fatalf("in_review -> %s must be allowed", terminal)
		}
		if !terminal.Terminal() {
			t.Fatalf("%s must be terminal", terminal)
		}
		if terminal.CanTransitionTo(ReviewStatusInReview) {
			t.Fatalf("%s must not transition anywhere", terminal)
		}
	}
	if ReviewStatusPending.CanTransitionTo(ReviewStatusApproved) {
		t.Fatalf("pending -> approved must be denied")
	}
}

func TestReviewRecord_ClaimedBy(t *testing.T) {
	r := ReviewRecord{Status: ReviewStatusInReview, AssignedTo: "staff-a"}
	if !r.ClaimedBy("staff-a") {
		t.Fatalf("expected staff-a to hold the claim")
	}
	if r.ClaimedBy("staff-b") {
		t.Fatalf("staff-b does not hold the claim")
	}
	r.Status = ReviewStatusPending
	if r.ClaimedBy("staff-a") {
		t.Fatalf("pending review has no claimant")
	}
}

func TestParseStaffRole(t *testing.T) {
	role, err := ParseStaffRole("  Senior_Reviewer ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleSeniorReviewer {
		t.Fatalf("unexpected role: %s", role)
	}

	if _, err := ParseStaffRole("supreme_leader"); !errors.Is(err, ErrUnknownStaffRole) {
		t.Fatalf("expected ErrUnknownStaffRole, got %v", err)
	}
}

func TestStaffRole_AtLeast(t *testing.T) {
	if !RoleSuperAdmin.AtLeast(RoleReviewer) || !RoleAdmin.AtLeast(RoleSeniorReviewer) {
		t.Fatalf("capability ordering broken upward")
	}
	if RoleReviewer.AtLeast(RoleSeniorReviewer) || RoleSeniorReviewer.AtLeast(RoleAdmin) {
		t.Fatalf("capability ordering broken downward")
	}
	if !RoleReviewer.AtLeast(RoleReviewer) {
		t.Fatalf("role must satisfy itself")
	}
	if StaffRole("unknown").AtLeast(RoleReviewer) {
		t.Fatalf("unknown role has no capabilities")
	}
}
