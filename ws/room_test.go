package ws

import (
	"sync"
	"testing"
)

// 入座/重连路径与指令路径并发读写同一张座位表，竞态检测器下应干净
func TestSeatListConcurrentAccess(t *testing.T) {
	roomID := "seat-race"
	RegisterRoom(roomID)
	defer UnregisterRoom(roomID)
	room, ok := getRoom(roomID)
	if !ok {
		t.Fatalf("房间未登记")
	}
	if !validateAndJoinRoom(roomID, "甲", nil) {
		t.Fatalf("甲入座失败")
	}

	// 乙始终不就绪，开局不会触发，不需要外部存储
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			room.mu.Lock()
			_ = handleReadyMessage(room, "甲", map[string]interface{}{"roomID": roomID})
			room.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			validateAndJoinRoom(roomID, "乙", nil)
		}
	}()
	wg.Wait()

	if seatIndex(room, "甲") != 0 {
		t.Errorf("甲应在 0 号座位")
	}
	if seatIndex(room, "乙") != 1 {
		t.Errorf("乙应在 1 号座位")
	}
	seats := RoomSeats(roomID)
	if len(seats) != 2 {
		t.Fatalf("应恰好两个座位，实际 %d", len(seats))
	}
	if !seats[0].Ready || seats[1].Ready {
		t.Errorf("只有甲就绪: %v %v", seats[0].Ready, seats[1].Ready)
	}
}

func TestJoinRejectsThirdPlayer(t *testing.T) {
	roomID := "full-room"
	RegisterRoom(roomID)
	defer UnregisterRoom(roomID)

	if !validateAndJoinRoom(roomID, "甲", nil) || !validateAndJoinRoom(roomID, "乙", nil) {
		t.Fatalf("前两位入座失败")
	}
	if validateAndJoinRoom(roomID, "丙", nil) {
		t.Errorf("第三位玩家不应入座")
	}
	// 已入座的玩家重连只换连接，不占新座位
	if !validateAndJoinRoom(roomID, "甲", nil) {
		t.Errorf("重连应被接受")
	}
	if len(RoomSeats(roomID)) != 2 {
		t.Errorf("重连后座位数不应变化")
	}
}
