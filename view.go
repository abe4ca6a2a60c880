package main

import (
	"html/template"
	"net/http"
)

func (s *webServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, nil)
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>TeaChat</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; flex-direction: column; height: 100vh; }
#messages { flex: 1; overflow-y: auto; padding: 12px; margin: 0; list-style: none; }
#messages li { padding: 2px 0; word-break: break-word; }
#form { display: flex; gap: 6px; padding: 10px; border-top: 1px solid #ccc; }
#input { flex: 1; padding: 6px; }
.chatImage { max-width: 320px; max-height: 240px; }
</style>
</head>
<body>
<ul id="messages"></ul>
<form id="form">
<input id="input" autocomplete="off" placeholder="Type a message, or /commands" maxlength="1000">
<input id="image" type="file" accept="image/*" style="width:12em">
<button>Send</button>
</form>
<script>
const messages = document.getElementById('messages');
const form = document.getElementById('form');
const input = document.getElementById('input');
const imageInput = document.getElementById('image');
let roomID = new URLSearchParams(location.search).get('room') || '';
const username = prompt('Choose a nickname') || '';

const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
ws.onopen = () => ws.send(JSON.stringify({event: 'join', username: username, roomID: roomID}));
ws.onmessage = (raw) => {
	const msg = JSON.parse(raw.data);
	switch (msg.event) {
	case 'authenticated':
		if (!msg.ok) { alert('Authentication refused'); return; }
		document.title = 'TeaChat - ' + msg.username;
		break;
	case 'roomChange':
		roomID = msg.roomID;
		break;
	case 'chat_message':
		const li = document.createElement('li');
		li.innerHTML = msg.html;
		messages.appendChild(li);
		scrollDown();
		if (!msg.quiet && document.hidden && Notification.permission === 'granted') {
			new Notification('TeaChat', {body: li.textContent});
		}
		break;
	case 'refresh':
		location.reload();
		break;
	}
};
ws.onclose = () => {
	const li = document.createElement('li');
	li.innerHTML = '<i style="color: grey;">Disconnected from the server.</i>';
	messages.appendChild(li);
};

function scrollDown() { messages.scrollTop = messages.scrollHeight; }

form.onsubmit = (e) => {
	e.preventDefault();
	if (imageInput.files.length > 0) {
		const reader = new FileReader();
		reader.onload = () => ws.send(JSON.stringify({event: 'image', data: reader.result}));
		reader.readAsDataURL(imageInput.files[0]);
		imageInput.value = '';
		return;
	}
	if (input.value === '') return;
	ws.send(JSON.stringify({event: 'chat_message', message: input.value}));
	input.value = '';
};

if ('Notification' in window && Notification.permission === 'default') {
	Notification.requestPermission();
}
</script>
</body>
</html>
`))
