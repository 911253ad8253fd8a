// Package helpers provides test utility functions for the Level Up API.
//
// # Requests
//
//	rr := helpers.NewRequest(t, http.MethodPost, "/events").
//	    WithBody(payload).
//	    Do(mux)
//
// # Assertions
//
//	helpers.AssertStatus(t, rr, http.StatusCreated)
//	helpers.AssertNotFound(t, rr, "Event not found")
//	helpers.AssertValidationError(t, rr, "date")
//
// # Pointer Helpers
//
//	players := helpers.IntPtr(4)
package helpers
