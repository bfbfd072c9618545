package lttng

// Well-known userspace tracepoint name patterns. The libc and pthread
// tracepoints are emitted by liblttng-ust-libc-wrapper.so and
// liblttng-ust-pthread-wrapper.so when preloaded into the traced process.
const (
	// UserspaceAll enables all userspace tracepoint providers.
	UserspaceAll = "ust_*"

	// LibcAll enables all libc wrapper tracepoints.
	LibcAll = "ust_libc*"

	LibcPosixMemalign = "ust_libc:posix_memalign"
	LibcMemalign      = "ust_libc:memalign"
	LibcRealloc       = "ust_libc:realloc"
	LibcCalloc        = "ust_libc:calloc"
	LibcFree          = "ust_libc:free"
	LibcMalloc        = "ust_libc:malloc"

	// BaseAddrSOInfo is emitted by the base-address state dump.
	BaseAddrSOInfo = "ust_baddr_statedump:soinfo"

	// PthreadAll enables all pthread wrapper tracepoints.
	PthreadAll = "ust_pthread*"

	PthreadMutexLockReq = "ust_pthread:pthread_mutex_lock_req"
	PthreadMutexLockAcq = "ust_pthread:pthread_mutex_lock_acq"
	PthreadMutexTrylock = "ust_pthread:pthread_mutex_trylock"
	PthreadMutexUnlock  = "ust_pthread:pthread_mutex_unlock"
)
