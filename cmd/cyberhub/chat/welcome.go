package chat

// welcomeBanner is the startup splash shown before the name prompt.
const welcomeBanner = ` ██████╗██╗   ██╗██████╗ ███████╗██████╗ ██╗  ██╗██╗   ██╗██████╗
██╔════╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗██║  ██║██║   ██║██╔══██╗
██║      ╚████╔╝ ██████╔╝█████╗  ██████╔╝███████║██║   ██║██████╔╝
██║       ╚██╔╝  ██╔══██╗██╔══╝  ██╔══██╗██╔══██║██║   ██║██╔══██╗
╚██████╗   ██║   ██████╔╝███████╗██║  ██║██║  ██║╚██████╔╝██████╔╝
 ╚═════╝   ╚═╝   ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝ `
