// Package activitylog implements the Activity Log query use case.
//
// It reads the event journal, not the store. Every accepted and every rejected command left an
// event there, so the activity log shows the full history of a book including failed attempts
// to borrow or delete it. Entries come in journal order.
package activitylog
