package model

import "testing"

func TestPacketRecordIsData(t *testing.T) {
	cases := []struct {
		name   string
		record PacketRecord
		expect bool
	}{{
		name:   "data packet",
		record: PacketRecord{PacketType: PacketTypeData, ChannelID: 7, Dataword: 80},
		expect: true,
	}, {
		name:   "config read packet",
		record: PacketRecord{PacketType: 3, ChannelID: 7},
		expect: false,
	}, {
		name:   "timestamp packet",
		record: PacketRecord{PacketType: 4},
		expect: false,
	}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.IsData(); got != tc.expect {
				t.Fatal("expected", tc.expect, "got", got)
			}
		})
	}
}
