package abi

// NotificationSet is a 32-bit bitmap of notification bits. A bit "fires"
// when it is simultaneously pending and unmasked; the core imposes no
// meaning on individual bits, only the firing algorithm in package task.
type NotificationSet uint32

// Timestamp is a monotonic kernel tick count. The core has no notion of
// wall-clock time; Timestamp only ever advances.
type Timestamp uint64
