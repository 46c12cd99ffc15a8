package response

type ChannelListResponse struct {
	ChannelNames []string `json:"channelNames"`
}
