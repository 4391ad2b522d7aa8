// Package bookshelf provides a personal book collection manager.
// Books are added, edited, marked read or unread, searched and deleted,
// and the whole collection is snapshotted to a durable key-value blob
// store after every change.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, etree/).
package bookshelf
