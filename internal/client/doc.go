// Package client assembles the interactive application: configuration,
// logging, the audit sink, the simulator service, the walkthrough runner,
// and the terminal UI.
package client
