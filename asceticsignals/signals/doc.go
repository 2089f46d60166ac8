// Package signals implements typed in-process signals. A signal holds
// observers and calls them synchronously on Notify. Every Attach returns a
// Connection that can detach the observer at any time, even from inside the
// observer. Types that embed Owner detach all their connections on Dispose.
package signals
