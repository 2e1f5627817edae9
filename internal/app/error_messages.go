// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings shared by the
// soul-scribe HTTP handlers and middleware.
//
// Every JSON body the API returns carries one of these values in its
// "message" field. Existing clients match on the exact wording, so changes
// here are breaking changes.
package app

const (
	// MsgUserRegistered acknowledges a successful registration.
	MsgUserRegistered = "User registered successfully!"

	// MsgLoginSuccessful accompanies the issued token.
	MsgLoginSuccessful = "Login successful!"

	MsgProfileUpdated = "Profile updated successfully!"
	MsgMoodLogged     = "Mood logged successfully!"
	MsgAIResponse     = "AI response received!"

	// MsgBackendRunning is the health endpoint message.
	MsgBackendRunning = "Backend is running!"

	// MsgCredentialsRequired is returned when username or password is empty.
	MsgCredentialsRequired = "Username and password are required"

	// MsgUsernameExists is returned when registration hits a taken username.
	MsgUsernameExists = "Username already exists"

	// MsgInvalidCredentials is returned for an unknown username as well as a
	// wrong password.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgAuthenticationRequired is returned by the auth middleware.
	MsgAuthenticationRequired = "Authentication required."

	MsgInvalidProfileData = "Invalid profile data. Expected a dictionary."
	MsgMoodRequired       = "Mood data is required."
	MsgInvalidMood        = "Invalid mood value provided."
	MsgMessageRequired    = "Message content is required."

	// MsgInvalidJSON is returned when the body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed."

	// MsgAIFailed covers every upstream failure kind and a missing API key.
	MsgAIFailed = "Failed to get response from AI."

	MsgTooManyRequests = "Too many requests."

	// MsgInternalServerError is returned for store failures and anything
	// unexpected.
	MsgInternalServerError = "Internal server error."

	MsgRegistrationFailed  = "Registration failed due to server error."
	MsgProfileUpdateFailed = "Failed to update profile due to server error."
	MsgMoodLogFailed       = "Failed to log mood due to server error."
)
