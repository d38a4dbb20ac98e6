package metrics

// IncrementFolderCreated increments the folder creation counter
func (m *Metrics) IncrementFolderCreated() {
	m.safeExecute("IncrementFolderCreated", func() {
		m.FolderCreatedTotal.Inc()
	})
}

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementBookmarkCreated increments the bookmark creation counter
func (m *Metrics) IncrementBookmarkCreated() {
	m.safeExecute("IncrementBookmarkCreated", func() {
		m.BookmarkCreatedTotal.Inc()
	})
}

// IncrementInvitationSent increments the invitation counter for a resource kind
func (m *Metrics) IncrementInvitationSent(resource string) {
	m.safeExecute("IncrementInvitationSent", func() {
		m.InvitationSentTotal.WithLabelValues(resource).Inc()
	})
}

// IncrementInvitationResponded increments the response counter for a resource kind
func (m *Metrics) IncrementInvitationResponded(resource, outcome string) {
	m.safeExecute("IncrementInvitationResponded", func() {
		m.InvitationRespondTotal.WithLabelValues(resource, outcome).Inc()
	})
}

// IncrementMetaImageFallback increments the favicon fallback counter
func (m *Metrics) IncrementMetaImageFallback() {
	m.safeExecute("IncrementMetaImageFallback", func() {
		m.MetaImageFallbackTotal.Inc()
	})
}

// SetFoldersTotal sets the live folder gauge
func (m *Metrics) SetFoldersTotal(count float64) {
	m.safeExecute("SetFoldersTotal", func() {
		m.FoldersTotal.Set(count)
	})
}

// SetBoardsTotal sets the live board gauge
func (m *Metrics) SetBoardsTotal(count float64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(count)
	})
}

// SetPendingInvitationsTotal sets the open invitation gauge
func (m *Metrics) SetPendingInvitationsTotal(count float64) {
	m.safeExecute("SetPendingInvitationsTotal", func() {
		m.PendingInvitationsTotal.Set(count)
	})
}
